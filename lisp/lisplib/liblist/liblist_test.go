package liblist_test

import (
	"testing"

	"github.com/bmatsuo/mlisp/lisptest"
)

func TestPackage(t *testing.T) {
	tests := lisptest.TestSuite{
		{"construction", lisptest.TestSequence{
			{"(list)", "()", ""},
			{"(list 1 2 3)", "(1 2 3)", ""},
			{"(cons 1 (cons 2 (cons 3 '())))", "(1 2 3)", ""},
			{"(cons 1 nil)", "(1)", ""},
			{"(cons 1 2)", "cons: argument is not a list: number", ""},
			{"(concat)", "()", ""},
			{"(concat '(1 2) '(3) nil '())", "(1 2 3)", ""},
			{"(def! xs '(1 2))", "(1 2)", ""},
			{"(cons 0 xs)", "(0 1 2)", ""},
			{"xs", "(1 2)", ""},
		}},
		{"access", lisptest.TestSequence{
			{"(first '(1 2))", "1", ""},
			{"(first '())", "nil", ""},
			{"(first nil)", "nil", ""},
			{"(rest '(1 2 3))", "(2 3)", ""},
			{"(rest '(1))", "()", ""},
			{"(rest nil)", "()", ""},
			{"(nth '(1 2 3) 0)", "1", ""},
			{"(nth '(1 2 3) 2)", "3", ""},
			{"(nth '(1 2 3) 3)", "nth: index out of range: 3", ""},
			{"(nth '(1 2 3) -1)", "nth: index out of range: -1", ""},
			{"(nth '(1 2 3) 'a)", "nth: second argument is not a number: symbol", ""},
		}},
		{"predicates", lisptest.TestSequence{
			{"(list? '(1))", "true", ""},
			{"(list? '())", "true", ""},
			{"(list? nil)", "false", ""},
			{"(list? 1)", "false", ""},
			{"(empty? '())", "true", ""},
			{"(empty? nil)", "true", ""},
			{"(empty? '(1))", "false", ""},
			{"(empty? 1)", "empty?: argument is not a list: number", ""},
			{"(count '(1 2 3))", "3", ""},
			{"(count nil)", "0", ""},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}
