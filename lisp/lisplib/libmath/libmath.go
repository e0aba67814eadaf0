package libmath

import (
	"github.com/bmatsuo/mlisp/lisp"
)

// LoadPackage adds the arithmetic and comparison builtins to env
func LoadPackage(env *lisp.LEnv) error {
	env.AddBuiltins(builtins...)
	return nil
}

var builtins = []lisp.LBuiltinDef{
	lisp.Builtin("+", builtinAdd),
	lisp.Builtin("-", builtinSub),
	lisp.Builtin("*", builtinMul),
	lisp.Builtin("/", builtinDiv),
	lisp.Builtin("<", compare("<", func(a, b int) bool { return a < b })),
	lisp.Builtin("<=", compare("<=", func(a, b int) bool { return a <= b })),
	lisp.Builtin(">", compare(">", func(a, b int) bool { return a > b })),
	lisp.Builtin(">=", compare(">=", func(a, b int) bool { return a >= b })),
	lisp.Builtin("number?", builtinNumberP),
}

func builtinAdd(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return lisp.Number(sum), nil
}

// (- x) negates x.  With more arguments each following argument is
// subtracted from x.
func builtinSub(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArityAtLeast("-", args, 1); err != nil {
		return nil, err
	}
	xs, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		return lisp.Number(-xs[0]), nil
	}
	diff := xs[0]
	for _, x := range xs[1:] {
		diff -= x
	}
	return lisp.Number(diff), nil
}

func builtinMul(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	prod := 1
	for _, x := range xs {
		prod *= x
	}
	return lisp.Number(prod), nil
}

// (/ x) computes 1/x.  With more arguments x is divided by each following
// argument in turn.  Every quotient is rounded to the nearest integer with
// halves rounded away from zero.
func builtinDiv(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArityAtLeast("/", args, 1); err != nil {
		return nil, err
	}
	xs, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		xs = []int{1, xs[0]}
	}
	q := xs[0]
	for _, x := range xs[1:] {
		q, err = Divide(q, x)
		if err != nil {
			return nil, err
		}
	}
	return lisp.Number(q), nil
}

// Divide returns a/b rounded to the nearest integer, with halves rounded away
// from zero.  Divide returns lisp.ErrDivideByZero if b is zero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, lisp.ErrDivideByZero
	}
	q, r := a/b, a%b
	if abs(r) >= abs(b)-abs(r) {
		// the remainder is at least half the divisor
		if (a < 0) == (b < 0) {
			q++
		} else {
			q--
		}
	}
	return q, nil
}

func compare(name string, ok func(a, b int) bool) lisp.LBuiltin {
	return func(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
		if err := lisp.CheckArityAtLeast(name, args, 2); err != nil {
			return nil, err
		}
		xs, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(xs); i++ {
			if !ok(xs[i-1], xs[i]) {
				return lisp.Bool(false), nil
			}
		}
		return lisp.Bool(true), nil
	}
}

func builtinNumberP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("number?", args, 1); err != nil {
		return nil, err
	}
	return lisp.Bool(args[0].Type == lisp.LNumber), nil
}

func numbers(name string, args []*lisp.LVal) ([]int, error) {
	xs := make([]int, len(args))
	for i, x := range args {
		if x.Type != lisp.LNumber {
			return nil, lisp.Errorf(name, "argument is not a number: %v", x.Type)
		}
		xs[i] = x.Num
	}
	return xs, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
