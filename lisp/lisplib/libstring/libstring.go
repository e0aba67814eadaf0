package libstring

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/mlisp/lisp"
)

// LoadPackage adds the string and printing builtins to env
func LoadPackage(env *lisp.LEnv) error {
	env.AddBuiltins(builtins...)
	return nil
}

var builtins = []lisp.LBuiltinDef{
	lisp.Builtin("str", builtinStr),
	lisp.Builtin("pr-str", builtinPrStr),
	lisp.Builtin("prn", builtinPrn),
	lisp.Builtin("println", builtinPrintln),
	lisp.Builtin("format", builtinFormat),
	lisp.Builtin("string?", builtinStringP),
	lisp.Builtin("symbol", builtinSymbol),
	lisp.Builtin("symbol?", builtinSymbolP),
}

// (str x ...) concatenates its arguments.  Strings contribute their raw text
// and every other value is rendered with the printer.
func builtinStr(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.String(join(args, "", false)), nil
}

func builtinPrStr(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.String(join(args, " ", true)), nil
}

func builtinPrn(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return writeLine(env.Runtime.Stdout, join(args, " ", true))
}

func builtinPrintln(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return writeLine(env.Runtime.Stdout, join(args, " ", false))
}

func builtinStringP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("string?", args, 1); err != nil {
		return nil, err
	}
	return lisp.Bool(args[0].Type == lisp.LString), nil
}

func builtinSymbol(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("symbol", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != lisp.LString {
		return nil, lisp.Errorf("symbol", "argument is not a string: %v", args[0].Type)
	}
	return lisp.Symbol(args[0].Str), nil
}

func builtinSymbolP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArity("symbol?", args, 1); err != nil {
		return nil, err
	}
	return lisp.Bool(args[0].Type == lisp.LSymbol), nil
}

// (format "x={} y={}" x y) substitutes values for each {} directive.  A
// literal brace is written by doubling it.
func builtinFormat(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if err := lisp.CheckArityAtLeast("format", args, 1); err != nil {
		return nil, err
	}
	format := args[0]
	fvals := args[1:]
	if format.Type != lisp.LString {
		return nil, lisp.Errorf("format", "first argument is not a string: %v", format.Type)
	}
	parts, err := parseFormatString(format.Str)
	if err != nil {
		return nil, lisp.Errorf("format", "%v", err)
	}
	var buf strings.Builder
	anonIndex := 0
	for _, p := range parts {
		if p != "{}" {
			buf.WriteString(p)
			continue
		}
		if anonIndex >= len(fvals) {
			return nil, lisp.Errorf("format", "too many formatting directives for supplied values")
		}
		buf.WriteString(fvals[anonIndex].String())
		anonIndex++
	}
	return lisp.String(buf.String()), nil
}

func join(args []*lisp.LVal, sep string, readable bool) string {
	parts := make([]string, len(args))
	for i, v := range args {
		if readable {
			parts[i] = v.Readable()
		} else {
			parts[i] = v.String()
		}
	}
	return strings.Join(parts, sep)
}

func writeLine(w io.Writer, s string) (*lisp.LVal, error) {
	_, err := fmt.Fprintln(w, s)
	if err != nil {
		return nil, err
	}
	return lisp.Nil(), nil
}

// parseFormatString splits f into literal text and "{}" directives.  Escaped
// braces are returned as literal text.
func parseFormatString(f string) ([]string, error) {
	var s []string
	tokens := tokenizeFormatString(f)
	for len(tokens) > 0 {
		tok := tokens[0]
		switch tok.typ {
		case formatText:
			s = append(s, tok.text)
			tokens = tokens[1:]
		case formatClose:
			if len(tokens) < 2 || tokens[1].typ != formatClose {
				return nil, fmt.Errorf("unexpected closing brace '}' outside of formatting directive")
			}
			s = append(s, "}")
			tokens = tokens[2:]
		case formatOpen:
			if len(tokens) < 2 {
				return nil, fmt.Errorf("unclosed formatting directive")
			}
			switch tokens[1].typ {
			case formatOpen:
				s = append(s, "{")
			case formatClose:
				s = append(s, "{}")
			default:
				return nil, fmt.Errorf("formatting directives must be empty")
			}
			tokens = tokens[2:]
		}
	}
	return s, nil
}

func tokenizeFormatString(f string) []formatToken {
	var tokens []formatToken
	for f != "" {
		i := strings.IndexAny(f, "{}")
		if i < 0 {
			return append(tokens, formatToken{formatText, f})
		}
		if i > 0 {
			tokens = append(tokens, formatToken{formatText, f[:i]})
			f = f[i:]
		}
		if f[0] == '{' {
			tokens = append(tokens, formatToken{formatOpen, "{"})
		} else {
			tokens = append(tokens, formatToken{formatClose, "}"})
		}
		f = f[1:]
	}
	return tokens
}

type formatTokenType uint

const (
	formatText formatTokenType = iota
	formatOpen
	formatClose
)

type formatToken struct {
	typ  formatTokenType
	text string
}
