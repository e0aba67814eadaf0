package lisp

import "io"

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.  The returned LVals should be evaluated in order.
	Read(name string, r io.Reader) ([]*LVal, error)

	// ReadForm parses the first form in text.  Any input following the
	// first form is ignored.
	ReadForm(text string) (*LVal, error)
}
