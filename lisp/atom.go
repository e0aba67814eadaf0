package lisp

// Atom is a single mutable slot holding an LVal.  Two atoms with equal
// contents are still distinct.
//
// Atom does no locking.  Evaluation is single threaded; a host that
// evaluates concurrently must serialize Reset and Swap itself.
type Atom struct {
	val *LVal
}

// NewAtom returns an LVal wrapping a new Atom that holds v.
func NewAtom(v *LVal) *LVal {
	if v == nil {
		v = Nil()
	}
	return &LVal{
		Type: LAtom,
		Atom: &Atom{val: v},
	}
}

// Deref returns the current contents of a.
func (a *Atom) Deref() *LVal {
	return a.val
}

// Reset replaces the contents of a with v and returns v.
func (a *Atom) Reset(v *LVal) *LVal {
	a.val = v
	return v
}

// Swap calls fn with the contents of a followed by args, stores the result
// in a, and returns it.  If fn fails a is left unchanged.  Swap is a plain
// read-modify-write.
func (a *Atom) Swap(env *LEnv, fn *LVal, args []*LVal) (*LVal, error) {
	callArgs := make([]*LVal, 0, len(args)+1)
	callArgs = append(callArgs, a.val)
	callArgs = append(callArgs, args...)
	v, err := env.Call(fn, callArgs)
	if err != nil {
		return nil, err
	}
	return a.Reset(v), nil
}
