// Package parser provides a lisp parser.
//
//	form    := <list> | <macro> <form> | <int> | <string> | <symbol>
//	list    := '(' <form>* ')' | '[' <form>* ']'
//	macro   := "'" | '`' | '~' | '~@' | '@'
//	int     := /-?[0-9][^\s\[\](){}'"`,;]*/
//	string  := '"' (/\\./ | /[^\\"]/)* '"'
//	symbol  := /[^\s\[\](){}'"`,;]+/
//	comment := /;[^\n]*/
//
// Commas are whitespace.  The symbols nil, true and false denote the
// corresponding literal values.
package parser

import (
	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/parser/lexer"
	"github.com/bmatsuo/mlisp/parser/rdparser"
)

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// Parse reads the first form in text.  Any input following the first form is
// ignored.  If text contains no form the returned error matches
// lisp.ErrNoForm.
func Parse(text string) (*lisp.LVal, error) {
	return rdparser.New(lexer.New("input", []byte(text))).ParseForm()
}
