// Package liblist provides builtins that construct and take apart lists.
// Wherever a list is expected nil is accepted as the empty list.
package liblist

import (
	"github.com/bmatsuo/mlisp/lisp"
)

// LoadPackage adds the list builtins to env
func LoadPackage(env *lisp.LEnv) error {
	env.AddBuiltins(builtins...)
	return nil
}

var builtins = []lisp.LBuiltinDef{
	lisp.Builtin("list", builtinList),
	lisp.Builtin("list?", builtinListP),
	lisp.Builtin("empty?", builtinEmptyP),
	lisp.Builtin("count", builtinCount),
	lisp.Builtin("cons", builtinCons),
	lisp.Builtin("concat", builtinConcat),
	lisp.Builtin("first", builtinFirst),
	lisp.Builtin("rest", builtinRest),
	lisp.Builtin("nth", builtinNth),
}

func builtinList(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	cells := make([]*lisp.LVal, len(args))
	copy(cells, args)
	return lisp.List(cells...), nil
}

func builtinListP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("list?", args, 1); err != nil {
		return nil, err
	}
	return lisp.Bool(args[0].Type == lisp.LList), nil
}

func builtinEmptyP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("empty?", args, 1); err != nil {
		return nil, err
	}
	cells, err := listCells("empty?", args[0])
	if err != nil {
		return nil, err
	}
	return lisp.Bool(len(cells) == 0), nil
}

func builtinCount(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("count", args, 1); err != nil {
		return nil, err
	}
	cells, err := listCells("count", args[0])
	if err != nil {
		return nil, err
	}
	return lisp.Number(len(cells)), nil
}

// (cons x lis) returns a new list with x followed by the elements of lis.
func builtinCons(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("cons", args, 2); err != nil {
		return nil, err
	}
	tail, err := listCells("cons", args[1])
	if err != nil {
		return nil, err
	}
	cells := make([]*lisp.LVal, 0, len(tail)+1)
	cells = append(cells, args[0])
	cells = append(cells, tail...)
	return lisp.List(cells...), nil
}

func builtinConcat(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	var cells []*lisp.LVal
	for _, lis := range args {
		c, err := listCells("concat", lis)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c...)
	}
	return lisp.List(cells...), nil
}

// (first lis) returns nil when lis is empty.
func builtinFirst(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("first", args, 1); err != nil {
		return nil, err
	}
	cells, err := listCells("first", args[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return lisp.Nil(), nil
	}
	return cells[0], nil
}

// (rest lis) returns the empty list when lis is empty.
func builtinRest(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("rest", args, 1); err != nil {
		return nil, err
	}
	cells, err := listCells("rest", args[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return lisp.List(), nil
	}
	rest := make([]*lisp.LVal, len(cells)-1)
	copy(rest, cells[1:])
	return lisp.List(rest...), nil
}

func builtinNth(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("nth", args, 2); err != nil {
		return nil, err
	}
	cells, err := listCells("nth", args[0])
	if err != nil {
		return nil, err
	}
	n := args[1]
	if n.Type != lisp.LNumber {
		return nil, lisp.Errorf("nth", "second argument is not a number: %v", n.Type)
	}
	if n.Num < 0 || n.Num >= len(cells) {
		return nil, lisp.Errorf("nth", "index out of range: %d", n.Num)
	}
	return cells[n.Num], nil
}

func listCells(name string, v *lisp.LVal) ([]*lisp.LVal, error) {
	switch v.Type {
	case lisp.LNil:
		return nil, nil
	case lisp.LList:
		return v.Cells, nil
	default:
		return nil, lisp.Errorf(name, "argument is not a list: %v", v.Type)
	}
}
