package lisp

// MacroExpand repeatedly expands v while it is a call to a macro bound in
// env.  The macro receives the unevaluated tail of the list.  The expansion
// is returned without being evaluated.
func (env *LEnv) MacroExpand(v *LVal) (*LVal, error) {
	for {
		mac, ok := env.macroCall(v)
		if !ok {
			return v, nil
		}
		name := v.Cells[0].Str
		exp, err := env.call(name, mac, v.Cells[1:], true)
		if err != nil {
			return nil, err
		}
		if logger := env.Runtime.Logger; logger != nil {
			logger.Printf("macroexpand %s => %s", v.Readable(), exp.Readable())
		}
		v = exp
	}
}

// macroCall returns the macro called by v, if v is a list whose head is a
// symbol bound to a macro.
func (env *LEnv) macroCall(v *LVal) (*LVal, bool) {
	if v.Type != LList || len(v.Cells) == 0 || v.Cells[0].Type != LSymbol {
		return nil, false
	}
	f, ok := env.Find(v.Cells[0].Str)
	if !ok || f.Type != LFun || !f.Macro {
		return nil, false
	}
	return f, true
}

// quasiquote copies v, replacing (unquote x) with the value of x and
// splicing the elements of the list value of x in place of
// (splice-unquote x).
func (env *LEnv) quasiquote(v *LVal) (*LVal, error) {
	if v.Type != LList || len(v.Cells) == 0 {
		return v, nil
	}
	if v.Cells[0].IsSymbol(UnquoteSymbol) {
		if err := CheckArity(UnquoteSymbol, v.Cells[1:], 1); err != nil {
			return nil, err
		}
		return env.Eval(v.Cells[1])
	}
	cells := make([]*LVal, 0, len(v.Cells))
	for _, c := range v.Cells {
		if !isCall(c, SpliceUnquoteSymbol) {
			q, err := env.quasiquote(c)
			if err != nil {
				return nil, err
			}
			cells = append(cells, q)
			continue
		}
		if err := CheckArity(SpliceUnquoteSymbol, c.Cells[1:], 1); err != nil {
			return nil, err
		}
		spliced, err := env.Eval(c.Cells[1])
		if err != nil {
			return nil, err
		}
		switch spliced.Type {
		case LNil:
		case LList:
			cells = append(cells, spliced.Cells...)
		default:
			return nil, berrf(SpliceUnquoteSymbol, "argument is not a list: %v", spliced.Type)
		}
	}
	return List(cells...), nil
}
