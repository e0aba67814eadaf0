package lisp

import (
	"bytes"
	"strconv"
	"strings"
)

// String renders v as text.  Strings are rendered as their raw contents.
// String never fails.
func (v *LVal) String() string {
	return newPrinter(false).render(v)
}

// Readable renders v as text that the reader accepts for every value except
// functions and atoms.  Strings are quoted and escaped.
func (v *LVal) Readable() string {
	return newPrinter(true).render(v)
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// printer renders values.  An atom encountered while rendering its own
// contents is printed as "(atom ...)".
type printer struct {
	readable bool
	atoms    map[*Atom]bool
}

func newPrinter(readable bool) *printer {
	return &printer{readable: readable}
}

func (p *printer) render(v *LVal) string {
	if v == nil {
		return "nil"
	}
	switch v.Type {
	case LSymbol:
		return v.Str
	case LNumber:
		return strconv.Itoa(v.Num)
	case LBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case LNil:
		return "nil"
	case LString:
		if p.readable {
			return `"` + stringEscaper.Replace(v.Str) + `"`
		}
		return v.Str
	case LList:
		return p.exprString(v.Cells, "(", ")")
	case LFun:
		switch {
		case v.Builtin != nil && v.Macro:
			return "#<builtin-macro " + v.Str + ">"
		case v.Builtin != nil:
			return "#<builtin " + v.Str + ">"
		case v.Macro:
			return "#<macro>"
		default:
			return "#<function>"
		}
	case LAtom:
		if p.atoms[v.Atom] {
			return "(atom ...)"
		}
		if p.atoms == nil {
			p.atoms = make(map[*Atom]bool)
		}
		p.atoms[v.Atom] = true
		defer delete(p.atoms, v.Atom)
		return "(atom " + p.render(v.Atom.Deref()) + ")"
	default:
		return "#<" + v.Type.String() + ">"
	}
}

func (p *printer) exprString(cells []*LVal, left string, right string) string {
	if len(cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(p.render(c))
	}
	buf.WriteString(right)
	return buf.String()
}
