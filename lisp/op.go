package lisp

type specialOp struct {
	name string
	fn   func(env *LEnv, args []*LVal) (*LVal, error)
}

var langSpecialOps = []*specialOp{
	{"def!", opDef},
	{"let*", opLetSeq},
	{"do", opDo},
	{"if", opIf},
	{"fn*", opFn},
	{QuoteSymbol, opQuote},
	{QuasiquoteSymbol, opQuasiquote},
	{"defmacro!", opDefmacro},
	{"macroexpand", opMacroexpand},
}

var specialOps map[string]*specialOp

func init() {
	specialOps = make(map[string]*specialOp, len(langSpecialOps))
	for _, op := range langSpecialOps {
		specialOps[op.name] = op
	}
}

// (def! name expr)
func opDef(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("def!", args, 2); err != nil {
		return nil, err
	}
	sym := args[0]
	if sym.Type != LSymbol {
		return nil, berrf("def!", "first argument is not a symbol: %v", sym.Type)
	}
	val, err := env.Eval(args[1])
	if err != nil {
		return nil, err
	}
	env.Define(sym.Str, val)
	return val, nil
}

// (let* (name expr ...) body)
//
// Each expr is evaluated in the new environment after the bindings before it
// have been made.
func opLetSeq(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("let*", args, 2); err != nil {
		return nil, err
	}
	bindlist := args[0]
	if bindlist.Type != LList {
		return nil, berrf("let*", "first argument is not a list: %v", bindlist.Type)
	}
	if len(bindlist.Cells)%2 != 0 {
		return nil, berrf("let*", "first argument is not a list of pairs (length %d)", len(bindlist.Cells))
	}
	letenv := NewEnv(env)
	for i := 0; i < len(bindlist.Cells); i += 2 {
		sym := bindlist.Cells[i]
		if sym.Type != LSymbol {
			return nil, berrf("let*", "binding name is not a symbol: %v", sym.Type)
		}
		val, err := letenv.Eval(bindlist.Cells[i+1])
		if err != nil {
			return nil, err
		}
		letenv.Define(sym.Str, val)
	}
	return letenv.Eval(args[1])
}

// (do expr*)
func opDo(env *LEnv, args []*LVal) (*LVal, error) {
	val := Nil()
	for _, c := range args {
		var err error
		val, err = env.Eval(c)
		if err != nil {
			return nil, err
		}
	}
	return val, nil
}

// (if test-form then-form [else-form])
func opIf(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) < 2 {
		return nil, &ArityError{Name: "if", Want: 2, Got: len(args), AtLeast: true}
	}
	if len(args) > 3 {
		return nil, &ArityError{Name: "if", Want: 3, Got: len(args)}
	}
	r, err := env.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if IsTruthy(r) {
		return env.Eval(args[1])
	}
	if len(args) == 2 {
		return Nil(), nil
	}
	return env.Eval(args[2])
}

// (fn* (formals) body)
func opFn(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("fn*", args, 2); err != nil {
		return nil, err
	}
	formals := args[0]
	if err := validateFormals("fn*", formals); err != nil {
		return nil, err
	}
	return Lambda(env, formals, args[1]), nil
}

// (quote expr)
func opQuote(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity(QuoteSymbol, args, 1); err != nil {
		return nil, err
	}
	return args[0], nil
}

// (quasiquote expr)
func opQuasiquote(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity(QuasiquoteSymbol, args, 1); err != nil {
		return nil, err
	}
	if isCall(args[0], SpliceUnquoteSymbol) {
		return nil, berrf(QuasiquoteSymbol, "%s used in an invalid context", SpliceUnquoteSymbol)
	}
	return env.quasiquote(args[0])
}

// (defmacro! name expr)
//
// The function expr evaluates to is copied before it is marked so that other
// bindings of the same function keep behaving as functions.
func opDefmacro(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("defmacro!", args, 2); err != nil {
		return nil, err
	}
	sym := args[0]
	if sym.Type != LSymbol {
		return nil, berrf("defmacro!", "first argument is not a symbol: %v", sym.Type)
	}
	fun, err := env.Eval(args[1])
	if err != nil {
		return nil, err
	}
	if fun.Type != LFun {
		return nil, berrf("defmacro!", "second argument is not a function: %v", fun.Type)
	}
	mac := *fun
	mac.Macro = true
	env.Define(sym.Str, &mac)
	return &mac, nil
}

// (macroexpand expr)
func opMacroexpand(env *LEnv, args []*LVal) (*LVal, error) {
	if err := CheckArity("macroexpand", args, 1); err != nil {
		return nil, err
	}
	return env.MacroExpand(args[0])
}

// isCall returns true if v is a non-empty list whose head is the symbol
// name.
func isCall(v *LVal, name string) bool {
	return v.Type == LList && len(v.Cells) > 0 && v.Cells[0].IsSymbol(name)
}
