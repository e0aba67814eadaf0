package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func TestRunSource(t *testing.T) {
	defer func(p bool) { runPrint = p }(runPrint)

	cmd, out := testCommand()
	env, err := newEnv(cmd)
	require.NoError(t, err)

	runPrint = false
	err = runSource(cmd, env, "a", []byte(`(def! x 2) (println "x" x)`))
	require.NoError(t, err)
	assert.Equal(t, "x 2\n", out.String())

	out.Reset()
	runPrint = true
	err = runSource(cmd, env, "b", []byte(`(+ x 1) "s" (list x)`))
	require.NoError(t, err)
	assert.Equal(t, "3\n\"s\"\n(2)\n", out.String())

	err = runSource(cmd, env, "c", []byte(`(undefined)`))
	assert.EqualError(t, err, "c: unbound symbol: undefined")
	err = runSource(cmd, env, "c", []byte("1\n(2"))
	assert.EqualError(t, err, "c:2:1: syntax error: unbalanced (: expected ')', got EOF")

	runPrint = false
	err = runSource(cmd, env, "d", []byte(`(undefined)`))
	assert.EqualError(t, err, "d: unbound symbol: undefined")
	err = runSource(cmd, env, "d", []byte("1\n(2"))
	assert.EqualError(t, err, "d:2:1: syntax error: unbalanced (: expected ')', got EOF")
}

func TestRunReadSources(t *testing.T) {
	defer func(e bool) { runExpression = e }(runExpression)

	runExpression = true
	sources, err := runReadSources([]string{"(+ 1 2)", "x"})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("(+ 1 2)"), []byte("x")}, sources)

	runExpression = false
	path := filepath.Join(t.TempDir(), "prog.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(+ 1 2)\n"), 0600))
	sources, err = runReadSources([]string{path})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("(+ 1 2)\n")}, sources)

	_, err = runReadSources([]string{filepath.Join(t.TempDir(), "missing.lisp")})
	assert.Error(t, err)
}
