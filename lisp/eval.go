package lisp

import "errors"

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.
//
// A list is macro expanded before anything else so that macros may expand
// into special forms.  What remains is either a special form, dispatched on
// its head symbol, or a function application.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	if v.Type != LList {
		return env.evalAtom(v)
	}
	if len(v.Cells) == 0 {
		return v, nil
	}
	v, err := env.MacroExpand(v)
	if err != nil {
		return nil, err
	}
	if v.Type != LList {
		return env.evalAtom(v)
	}
	if len(v.Cells) == 0 {
		return v, nil
	}
	if head := v.Cells[0]; head.Type == LSymbol {
		if op, ok := specialOps[head.Str]; ok {
			return op.fn(env, v.Cells[1:])
		}
	}
	return env.evalApply(v)
}

// evalAtom evaluates anything that is not a list.  Symbols are looked up and
// every other value evaluates to itself.
func (env *LEnv) evalAtom(v *LVal) (*LVal, error) {
	if v.Type == LSymbol {
		return env.Lookup(v.Str)
	}
	return v, nil
}

// evalApply evaluates every cell of s left to right and calls the head with
// the rest.  Nothing is called if any cell fails to evaluate.
func (env *LEnv) evalApply(s *LVal) (*LVal, error) {
	cells := make([]*LVal, len(s.Cells))
	for i, c := range s.Cells {
		r, err := env.Eval(c)
		if err != nil {
			return nil, err
		}
		cells[i] = r
	}
	f := cells[0]
	if f.Type != LFun {
		return nil, &NotCallableError{Value: f}
	}
	name := funName(f)
	if s.Cells[0].Type == LSymbol {
		name = s.Cells[0].Str
	}
	return env.call(name, f, cells[1:], false)
}

// Call invokes LFun fun with the list args.  Args are not evaluated.
func (env *LEnv) Call(fun *LVal, args []*LVal) (*LVal, error) {
	if fun.Type != LFun {
		return nil, &NotCallableError{Value: fun}
	}
	return env.call(funName(fun), fun, args, false)
}

func (env *LEnv) call(name string, fun *LVal, args []*LVal, macro bool) (*LVal, error) {
	stack := env.Runtime.Stack
	stack.Push(name, macro)
	defer stack.Pop()

	if logger := env.Runtime.Logger; logger != nil && !macro {
		logger.Printf("call %s %s", name, newPrinter(true).exprString(args, "(", ")"))
	}

	var v *LVal
	var err error
	if fun.Builtin != nil {
		v, err = fun.Builtin(env, args)
	} else {
		var fenv *LEnv
		fenv, err = bindFormals(name, fun.Env, fun.Formals, args)
		if err == nil {
			v, err = fenv.Eval(fun.Body)
		}
	}
	if err != nil {
		var serr *StackError
		if !errors.As(err, &serr) {
			err = &StackError{Err: err, Stack: stack.Copy()}
		}
		return nil, err
	}
	return v, nil
}

func funName(f *LVal) string {
	if f.Builtin != nil {
		return f.Str
	}
	return "anonymous"
}
