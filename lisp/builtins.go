package lisp

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args []*LVal) (*LVal, error)
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) (*LVal, error) {
	return fun.fun(env, args)
}

// Builtin returns an LBuiltinDef that binds fn to name.
func Builtin(name string, fn LBuiltin) LBuiltinDef {
	return &langBuiltin{name, fn}
}

var langBuiltins = []*langBuiltin{
	{"eval", builtinEval},
	{"read-string", builtinReadString},
	{"atom", builtinAtom},
	{"atom?", builtinAtomP},
	{"deref", builtinDeref},
	{"reset!", builtinReset},
	{"swap!", builtinSwap},
	{"=", builtinEqual},
	{"type-name", builtinTypeName},
}

// DefaultBuiltins returns the builtins installed by InitializeUserEnv.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

// eval always evaluates in the root environment.
func builtinEval(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("eval", args, 1); err != nil {
		return nil, err
	}
	return env.root().Eval(args[0])
}

func builtinReadString(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("read-string", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != LString {
		return nil, berrf("read-string", "argument is not a string: %v", args[0].Type)
	}
	if env.Runtime.Reader == nil {
		return nil, ErrNoReader
	}
	return env.Runtime.Reader.ReadForm(args[0].Str)
}

func builtinAtom(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("atom", args, 1); err != nil {
		return nil, err
	}
	return NewAtom(args[0]), nil
}

func builtinAtomP(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("atom?", args, 1); err != nil {
		return nil, err
	}
	return Bool(args[0].Type == LAtom), nil
}

func builtinDeref(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("deref", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != LAtom {
		return nil, berrf("deref", "argument is not an atom: %v", args[0].Type)
	}
	return args[0].Atom.Deref(), nil
}

func builtinReset(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("reset!", args, 2); err != nil {
		return nil, err
	}
	if args[0].Type != LAtom {
		return nil, berrf("reset!", "first argument is not an atom: %v", args[0].Type)
	}
	return args[0].Atom.Reset(args[1]), nil
}

// (swap! atom fn extra-args...)
func builtinSwap(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArityAtLeast("swap!", args, 2); err != nil {
		return nil, err
	}
	if args[0].Type != LAtom {
		return nil, berrf("swap!", "first argument is not an atom: %v", args[0].Type)
	}
	if args[1].Type != LFun {
		return nil, berrf("swap!", "second argument is not a function: %v", args[1].Type)
	}
	return args[0].Atom.Swap(env, args[1], args[2:])
}

func builtinEqual(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("=", args, 2); err != nil {
		return nil, err
	}
	return Bool(Equal(args[0], args[1])), nil
}

func builtinTypeName(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("type-name", args, 1); err != nil {
		return nil, err
	}
	return String(args[0].Type.String()), nil
}
