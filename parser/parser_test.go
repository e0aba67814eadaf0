package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text   string
		result string
	}{
		{"1", "1"},
		{"-12", "-12"},
		{"abc", "abc"},
		{"-", "-"},
		{"nil", "nil"},
		{"true", "true"},
		{"false", "false"},
		{`"a b"`, `"a b"`},
		{`"a\"b"`, `"a\"b"`},
		{`"a\nb"`, `"a\nb"`},
		{`"a\\"`, `"a\\"`},
		{`"\q"`, `"q"`},
		{`""`, `""`},
		{"()", "()"},
		{"(1 (2 3) ())", "(1 (2 3) ())"},
		{"[1 [2] (3)]", "(1 (2) (3))"},
		{"(a,b , c)", "(a b c)"},
		{"(a ; comment\n b)", "(a b)"},
		{"; leading comment\nx", "x"},
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"`(a ~b ~@c)", "(quasiquote (a (unquote b) (splice-unquote c)))"},
		{"@a", "(deref a)"},
		{"1 2", "1"},
		{"(a) )", "(a)"},
	}
	for _, test := range tests {
		v, err := Parse(test.text)
		if assert.NoError(t, err, "%q", test.text) {
			assert.Equal(t, test.result, v.Readable(), "%q", test.text)
		}
	}
}

func TestParse_types(t *testing.T) {
	v, err := Parse(`(1 "s" s true nil)`)
	require.NoError(t, err)
	require.Equal(t, lisp.LList, v.Type)
	var types []lisp.LValType
	for _, c := range v.Cells {
		types = append(types, c.Type)
	}
	assert.Equal(t, []lisp.LValType{lisp.LNumber, lisp.LString, lisp.LSymbol, lisp.LBool, lisp.LNil}, types)
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		text string
		msg  string
	}{
		{"(1 2", "input:1:1: syntax error: unbalanced (: expected ')', got EOF"},
		{"(1\n  (2", "input:2:3: syntax error: unbalanced (: expected ')', got EOF"},
		{"[1", "input:1:1: syntax error: unbalanced [: expected ']', got EOF"},
		{`"abc`, `input:1:1: syntax error: unbalanced string literal: expected '"', got EOF`},
		{`"abc\"`, `input:1:1: syntax error: unbalanced string literal: expected '"', got EOF`},
		{"12abc", "input:1:1: syntax error: invalid integer literal: 12abc"},
		{"99999999999999999999", "input:1:1: syntax error: invalid integer literal: 99999999999999999999"},
		{")", "input:1:1: syntax error: unexpected )"},
		{"(1 ]", "input:1:4: syntax error: unexpected ]: expected ')'"},
		{"'", "input:1:2: syntax error: unexpected EOF"},
		{"{}", "input:1:1: syntax error: unsupported syntax {"},
		{"^x", "input:1:1: syntax error: unsupported syntax ^"},
	}
	for _, test := range tests {
		_, err := Parse(test.text)
		var serr *lisp.SyntaxError
		if assert.True(t, errors.As(err, &serr), "%q", test.text) {
			assert.EqualError(t, err, test.msg)
		}
	}
}

func TestParse_noForm(t *testing.T) {
	for _, text := range []string{"", "  ", ",", "; comment", "; a\n; b\n"} {
		_, err := Parse(text)
		var serr *lisp.SyntaxError
		assert.True(t, errors.As(err, &serr), "%q", text)
		assert.True(t, errors.Is(err, lisp.ErrNoForm), "%q", text)
	}
}

func TestRoundTrip(t *testing.T) {
	exprs := []*lisp.LVal{
		lisp.Number(0),
		lisp.Number(-42),
		lisp.Bool(true),
		lisp.Bool(false),
		lisp.Nil(),
		lisp.String(""),
		lisp.String("tab\there \"quoted\" back\\slash\nnewline"),
		lisp.Symbol("foo-bar?"),
		lisp.List(),
		lisp.List(
			lisp.Symbol("def!"),
			lisp.Symbol("x"),
			lisp.List(lisp.Number(1), lisp.String("a"), lisp.Nil(), lisp.List(lisp.Bool(false))),
		),
	}
	for _, e := range exprs {
		text := e.Readable()
		v, err := Parse(text)
		if assert.NoError(t, err, text) {
			assert.True(t, lisp.Equal(e, v), "%s parsed as %s", text, v.Readable())
		}
	}
}

func TestReader(t *testing.T) {
	r := NewReader()
	exprs, err := r.Read("test", strings.NewReader("(def! x 1) ; one\n(+ x 1)\n"))
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "(def! x 1)", exprs[0].Readable())
	assert.Equal(t, "(+ x 1)", exprs[1].Readable())

	exprs, err = r.Read("test", strings.NewReader("; nothing\n"))
	require.NoError(t, err)
	assert.Len(t, exprs, 0)

	_, err = r.Read("test", strings.NewReader("(ok)\n(bad"))
	assert.EqualError(t, err, "test:2:1: syntax error: unbalanced (: expected ')', got EOF")

	v, err := r.ReadForm("(a) (b)")
	require.NoError(t, err)
	assert.Equal(t, "(a)", v.Readable())
}
