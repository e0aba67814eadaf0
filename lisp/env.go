package lisp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoReader is returned when source text must be parsed but the runtime
// has no Reader.
var ErrNoReader = errors.New("no reader configured")

// LEnv is a lisp environment, one frame in a chain of lexical scopes.
//
// A frame is shared by every closure created while it was active, so it
// lives as long as the longest lived of those closures.  Parent is only
// followed for lookups; the chain is never cyclic.
type LEnv struct {
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv.  A nil parent creates a root
// environment with a StandardRuntime.
func NewEnv(parent *LEnv) *LEnv {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = StandardRuntime()
	}
	return &LEnv{
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

// NewEnvBind returns a child of parent that binds each symbol in params to
// the corresponding value in args.  An ArityError is returned when the number
// of args does not match params.  A VarArgSymbol in params binds the symbol
// following it to a list of the remaining args.
func NewEnvBind(parent *LEnv, params []*LVal, args []*LVal) (*LEnv, error) {
	formals := List(params...)
	if err := validateFormals("bind", formals); err != nil {
		return nil, err
	}
	return bindFormals("", parent, formals, args)
}

// InitializeUserEnv installs the core builtins into env and applies config
// in order.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	env.AddBuiltins(DefaultBuiltins()...)
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}

// Define binds name to v in env, the current frame only.  An existing
// binding in env is overwritten; bindings in outer frames are shadowed.
func (env *LEnv) Define(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Scope[name] = v
}

// Find searches env and its ancestors, innermost first, for name.
func (env *LEnv) Find(name string) (*LVal, bool) {
	for e := env; e != nil; e = e.Parent {
		v, ok := e.Scope[name]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Lookup returns the value bound to name in env or its ancestors.  An
// UnboundSymbolError is returned if no frame binds name.
func (env *LEnv) Lookup(name string) (*LVal, error) {
	v, ok := env.Find(name)
	if !ok {
		return nil, &UnboundSymbolError{Name: name}
	}
	return v, nil
}

// AddBuiltins binds the given funs to their names in env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	for _, f := range funs {
		if _, ok := env.Scope[f.Name()]; ok {
			panic("symbol already defined: " + f.Name())
		}
		env.Define(f.Name(), Fun(f.Name(), f.Eval))
	}
}

// LoadString parses and evaluates every form in source, returning the value
// of the last one.
func (env *LEnv) LoadString(name, source string) (*LVal, error) {
	return env.Load(name, strings.NewReader(source))
}

// LoadFile parses and evaluates every form in the file at path, returning
// the value of the last one.
func (env *LEnv) LoadFile(path string) (*LVal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return env.Load(path, f)
}

// Load reads forms from r using the runtime's Reader and evaluates them in
// env.  Evaluation stops at the first error.  Load returns Nil when r holds
// no forms.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, ErrNoReader
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	ret := Nil()
	for _, expr := range exprs {
		ret, err = env.Eval(expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return ret, nil
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// validateFormals checks that formals is a list of symbols in which a
// VarArgSymbol, if present, is followed by exactly one symbol.
func validateFormals(name string, formals *LVal) error {
	if formals.Type != LList {
		return berrf(name, "formal argument list is not a list: %v", formals.Type)
	}
	for i, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return berrf(name, "formal argument is not a symbol: %v", sym.Type)
		}
		if sym.Str == VarArgSymbol && i != len(formals.Cells)-2 {
			return berrf(name, "symbol %s must be followed by exactly one symbol", VarArgSymbol)
		}
	}
	return nil
}

// bindFormals creates a child of parent binding formals to args.  Formals
// must already be validated.
func bindFormals(name string, parent *LEnv, formals *LVal, args []*LVal) (*LEnv, error) {
	env := NewEnv(parent)
	params := formals.Cells
	for i, p := range params {
		if p.Str != VarArgSymbol {
			continue
		}
		if len(args) < i {
			return nil, &ArityError{Name: name, Want: i, Got: len(args), AtLeast: true}
		}
		for j := 0; j < i; j++ {
			env.Define(params[j].Str, args[j])
		}
		rest := make([]*LVal, len(args)-i)
		copy(rest, args[i:])
		env.Define(params[i+1].Str, List(rest...))
		return env, nil
	}
	if len(params) != len(args) {
		return nil, &ArityError{Name: name, Want: len(params), Got: len(args)}
	}
	for i, p := range params {
		env.Define(p.Str, args[i])
	}
	return env, nil
}
