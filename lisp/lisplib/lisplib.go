// Package lisplib is used to conveniently load the standard library for the
// mlisp environment
package lisplib

import (
	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/lisp/lisplib/liblist"
	"github.com/bmatsuo/mlisp/lisp/lisplib/libmath"
	"github.com/bmatsuo/mlisp/lisp/lisplib/libos"
	"github.com/bmatsuo/mlisp/lisp/lisplib/libstring"
)

// Bootstrap is lisp source evaluated by LoadLibrary after the builtin
// packages are installed.
const Bootstrap = `
(def! not (fn* (a) (if a false true)))

(defmacro! cond
  (fn* (& xs)
    (if (> (count xs) 0)
      (list 'if (first xs)
            (if (> (count xs) 1) (nth xs 1) nil)
            (cons 'cond (rest (rest xs)))))))
`

var packages = []lisp.Loader{
	libmath.LoadPackage,
	liblist.LoadPackage,
	libstring.LoadPackage,
	libos.LoadPackage,
}

// LoadLibrary loads the standard library into env.  The bootstrap source is
// read with the env's Reader, which must be configured first.
func LoadLibrary(env *lisp.LEnv) error {
	for _, load := range packages {
		err := load(env)
		if err != nil {
			return err
		}
	}
	_, err := env.LoadString("bootstrap", Bootstrap)
	return err
}
