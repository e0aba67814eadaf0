package libos_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/lisptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(s string) string {
	return lisp.String(s).Readable()
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(text, []byte("one\ntwo \"2\"\n\nthree\n"), 0600))
	src := filepath.Join(dir, "src.lisp")
	require.NoError(t, os.WriteFile(src, []byte(`
; definitions
(def! double (fn* (x) (* 2 x)))
(println "loaded")
(double 21)
`), 0600))
	bad := filepath.Join(dir, "bad.lisp")
	require.NoError(t, os.WriteFile(bad, []byte("(def! ok 1)\n(undefined)\n(def! never 2)\n"), 0600))
	missing := filepath.Join(dir, "missing.txt")

	var out bytes.Buffer
	env, err := lisptest.NewEnv(lisp.WithStdout(&out))
	require.NoError(t, err)

	assert.Equal(t, `"one\ntwo \"2\"\n\nthree\n"`, lisptest.EvalString(env, "(read-from-file "+quote(text)+")"))
	assert.Equal(t, `("one" "two \"2\"" "" "three")`, lisptest.EvalString(env, "(read-lines "+quote(text)+")"))
	assert.Equal(t, "read-lines: argument is not a string: number", lisptest.EvalString(env, "(read-lines 1)"))
	assert.Contains(t, lisptest.EvalString(env, "(read-from-file "+quote(missing)+")"), "no such file or directory")

	assert.Equal(t, "42", lisptest.EvalString(env, "(let* (x 1) (load-file "+quote(src)+"))"))
	assert.Equal(t, "loaded\n", out.String())
	assert.Equal(t, "8", lisptest.EvalString(env, "(double 4)"), "load-file defines in the root environment")

	assert.Equal(t, bad+": unbound symbol: undefined", lisptest.EvalString(env, "(load-file "+quote(bad)+")"))
	assert.Equal(t, "1", lisptest.EvalString(env, "ok"))
	assert.Equal(t, "unbound symbol: never", lisptest.EvalString(env, "never"))

	assert.Equal(t, "true", lisptest.EvalString(env, "(exists? "+quote(text)+")"))
	assert.Equal(t, "false", lisptest.EvalString(env, "(exists? "+quote(missing)+")"))
	assert.Equal(t, "true", lisptest.EvalString(env, "(dir? "+quote(dir)+")"))
	assert.Equal(t, "false", lisptest.EvalString(env, "(dir? "+quote(text)+")"))
}

func TestGetenv(t *testing.T) {
	t.Setenv("MLISP_TEST_VAR", "value")
	env, err := lisptest.NewEnv()
	require.NoError(t, err)
	assert.Equal(t, `"value"`, lisptest.EvalString(env, `(getenv "MLISP_TEST_VAR")`))
	assert.Equal(t, `"value"`, lisptest.EvalString(env, `(getenv 'MLISP_TEST_VAR)`))
	assert.Equal(t, "nil", lisptest.EvalString(env, `(getenv "MLISP_TEST_UNSET_VAR")`))
	assert.Equal(t, "getenv: argument not a string or symbol: number", lisptest.EvalString(env, `(getenv 1)`))
}
