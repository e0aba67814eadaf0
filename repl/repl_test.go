package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/lisptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRep(t *testing.T) {
	env, err := lisptest.NewEnv()
	require.NoError(t, err)

	out, err := Rep(env, "(+ 1 2) ignored")
	require.NoError(t, err)
	assert.Equal(t, "3", out)

	_, err = Rep(env, "  ; just a comment")
	assert.True(t, errors.Is(err, lisp.ErrNoForm))

	_, err = Rep(env, "(undefined-symbol)")
	var uerr *lisp.UnboundSymbolError
	assert.True(t, errors.As(err, &uerr))

	out, err = Rep(env, "(def! x \"ok\")")
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, out)
}

func TestRunRepl(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env, err := lisptest.NewEnv(lisp.WithStdout(&stdout))
	require.NoError(t, err)

	input := strings.Join([]string{
		"(def! inc (fn* (x) (+ x 1)))",
		"",
		"; comment",
		"(undefined-symbol)",
		"(inc 1 2)",
		"(1 2",
		"(def! y (inc 1))",
		"(println y)",
		"y",
	}, "\n")
	err = RunRepl(env, "", WithStdin(strings.NewReader(input)), WithStdout(&stdout), WithStderr(&stderr))
	require.NoError(t, err)

	assert.Equal(t, "#<function>\n2\n2\nnil\n2\n", stdout.String())
	assert.Equal(t, strings.Join([]string{
		"error: unbound symbol: undefined-symbol",
		"error: inc: expected 1 arguments (got 2)",
		"error: input:1:1: syntax error: unbalanced (: expected ')', got EOF",
		"",
	}, "\n"), stderr.String())
}

func TestRunRepl_debugStack(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env, err := lisptest.NewEnv()
	require.NoError(t, err)

	input := "(def! f (fn* () (nth '() 0)))\n(f)\n"
	err = RunRepl(env, "", WithStdin(strings.NewReader(input)), WithStdout(&stdout), WithStderr(&stderr), WithDebugStack(true))
	require.NoError(t, err)

	assert.Equal(t, "#<function>\n", stdout.String())
	assert.Equal(t, `error: nth: index out of range: 0
Stack Trace [2 frames -- entrypoint last]:
  height 1: nth
  height 0: f
`, stderr.String())
}
