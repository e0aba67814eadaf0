package libos

import (
	"bufio"
	"os"

	"github.com/bmatsuo/mlisp/lisp"
)

// LoadPackage adds the file and process builtins to env
func LoadPackage(env *lisp.LEnv) error {
	env.AddBuiltins(builtins...)
	return nil
}

var builtins = []lisp.LBuiltinDef{
	lisp.Builtin("read-from-file", BuiltinReadFromFile),
	lisp.Builtin("read-lines", BuiltinReadLines),
	lisp.Builtin("load-file", BuiltinLoadFile),
	lisp.Builtin("getenv", BuiltinGetenv),
	lisp.Builtin("exists?", BuiltinExists),
	lisp.Builtin("dir?", BuiltinIsDir),
}

// BuiltinReadFromFile returns the contents of a file as a string.
func BuiltinReadFromFile(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	path, err := pathArg("read-from-file", args)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return lisp.String(string(b)), nil
}

// BuiltinReadLines returns a list containing each line of a file, without
// line terminators.
func BuiltinReadLines(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	path, err := pathArg("read-lines", args)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []*lisp.LVal
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, lisp.String(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lisp.List(lines...), nil
}

// BuiltinLoadFile evaluates every form in a file in the root environment and
// returns the value of the last one.
func BuiltinLoadFile(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	path, err := pathArg("load-file", args)
	if err != nil {
		return nil, err
	}
	root := env
	for root.Parent != nil {
		root = root.Parent
	}
	return root.LoadFile(path)
}

func BuiltinGetenv(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("getenv", args, 1); err != nil {
		return nil, err
	}
	key := args[0]
	if key.Type != lisp.LString && key.Type != lisp.LSymbol {
		return nil, lisp.Errorf("getenv", "argument not a string or symbol: %v", key.Type)
	}
	val, ok := os.LookupEnv(key.Str)
	if !ok {
		return lisp.Nil(), nil
	}
	return lisp.String(val), nil
}

func BuiltinExists(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	path, err := pathArg("exists?", args)
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return lisp.Bool(false), nil
	}
	if err != nil {
		return nil, err
	}
	return lisp.Bool(true), nil
}

func BuiltinIsDir(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	path, err := pathArg("dir?", args)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return lisp.Bool(false), nil
	}
	if err != nil {
		return nil, err
	}
	return lisp.Bool(stat.IsDir()), nil
}

func pathArg(name string, args []*lisp.LVal) (string, error) {
	if err := lisp.CheckArity(name, args, 1); err != nil {
		return "", err
	}
	if args[0].Type != lisp.LString {
		return "", lisp.Errorf(name, "argument is not a string: %v", args[0].Type)
	}
	return args[0].Str, nil
}
