package lisp

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LSymbol
	LNumber
	LBool
	LNil
	LString
	LList
	LFun
	LAtom
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LSymbol:  "symbol",
	LNumber:  "number",
	LBool:    "boolean",
	LNil:     "nil",
	LString:  "string",
	LList:    "list",
	LFun:     "function",
	LAtom:    "atom",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a host function that implements a lisp function.  Arguments
// have already been evaluated (or, for macros, are the unevaluated forms).
type LBuiltin func(env *LEnv, args []*LVal) (*LVal, error)

// LVal is a lisp value.  Only LAtom values have mutable state; every other
// LVal is treated as immutable once constructed.
type LVal struct {
	Type  LValType
	Num   int
	Bool  bool
	Str   string // symbol name, string text, or builtin name
	Cells []*LVal

	// Variables needed for function values
	Builtin LBuiltin
	Env     *LEnv
	Formals *LVal
	Body    *LVal
	Macro   bool

	Atom *Atom
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Number returns an LVal representing the number x.
func Number(x int) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Nil returns an LVal representing nil, an absent value.  Nil is distinct
// from Bool(false) and from the empty list.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// List returns an LVal representing a list containing cells.  The slice is
// retained and must not be modified by the caller afterwards.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Fun returns an LVal representing a builtin function with the given name.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns a closure over env that binds formals and evaluates body.
func Lambda(env *LEnv, formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LFun,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsNil returns true if v is the nil value.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsSymbol returns true if v is the symbol named s.
func (v *LVal) IsSymbol(s string) bool {
	return v.Type == LSymbol && v.Str == s
}

// IsTruthy implements the language's truthiness policy.  Only nil and false
// are falsy.  Every other value, including 0, "" and the empty list, is true.
func IsTruthy(v *LVal) bool {
	switch v.Type {
	case LNil:
		return false
	case LBool:
		return v.Bool
	default:
		return true
	}
}

// Equal reports whether a and b are structurally equal.  Functions and
// atoms are only equal to themselves.
func Equal(a, b *LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LSymbol, LString:
		return a.Str == b.Str
	case LNumber:
		return a.Num == b.Num
	case LBool:
		return a.Bool == b.Bool
	case LNil:
		return true
	case LList:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case LFun:
		return a == b
	case LAtom:
		return a.Atom == b.Atom
	default:
		return false
	}
}
