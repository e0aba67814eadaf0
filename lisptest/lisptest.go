// Package lisptest provides a harness for testing lisp code evaluated in a
// fully loaded environment.
package lisptest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/lisp/lisplib"
	"github.com/bmatsuo/mlisp/parser"
	"github.com/stretchr/testify/assert"
)

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, or the error message
	Output string // output written by the expression
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a root environment with a parser and the standard library
// loaded.  Additional config is applied after the library is loaded.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithLoader(lisplib.LoadLibrary),
	}, config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}

// EvalString parses the first form in expr and evaluates it in env.  The
// printed result is returned, or the error message if evaluation failed.
func EvalString(env *lisp.LEnv, expr string) string {
	v, err := parser.Parse(expr)
	if err != nil {
		return err.Error()
	}
	v, err = env.Eval(v)
	if err != nil {
		return err.Error()
	}
	return v.Readable()
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			var out bytes.Buffer
			env, err := NewEnv(lisp.WithStdout(&out))
			if err != nil {
				t.Fatal(err)
			}
			for j, expr := range test.TestSequence {
				out.Reset()
				result := EvalString(env, expr.Expr)
				assert.Equal(t, expr.Result, result, "expr %d: %s", j, expr.Expr)
				assert.Equal(t, expr.Output, out.String(), "expr %d output: %s", j, expr.Expr)
			}
		})
	}
}
