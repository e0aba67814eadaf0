package lisp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatsuo/mlisp/parser/token"
)

// ErrNoForm is matched (with errors.Is) by the SyntaxError returned when the
// input contains no form at all, only whitespace and comments.
var ErrNoForm = errors.New("no form in input")

// ErrDivideByZero is returned by integer division with a zero divisor.
var ErrDivideByZero = errors.New("division by zero")

// SyntaxError is returned by a Reader for malformed input.
type SyntaxError struct {
	Source *token.Location
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Source != nil {
		return fmt.Sprintf("%v: syntax error: %s", e.Source, msg)
	}
	return "syntax error: " + msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// UnboundSymbolError is returned when a symbol is not bound in any frame of
// an environment chain.
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Error() string {
	return "unbound symbol: " + e.Name
}

// ArityError is returned when a function or special form receives the wrong
// number of arguments.
type ArityError struct {
	Name    string
	Want    int
	Got     int
	AtLeast bool
}

func (e *ArityError) Error() string {
	name := e.Name
	if name == "" {
		name = "function"
	}
	if e.AtLeast {
		return fmt.Sprintf("%s: expected at least %d arguments (got %d)", name, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: expected %d arguments (got %d)", name, e.Want, e.Got)
}

// NotCallableError is returned when the head of an application does not
// evaluate to a function.
type NotCallableError struct {
	Value *LVal
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("first element of expression is not a function: %v", e.Value.Readable())
}

// TypeMismatchError is returned when a builtin or special form receives a
// value of a type it cannot operate on.
type TypeMismatchError struct {
	Op  string
	Msg string
}

func (e *TypeMismatchError) Error() string {
	return e.Op + ": " + e.Msg
}

// berrf returns a TypeMismatchError for the named builtin or special form.
func berrf(name string, format string, v ...interface{}) error {
	return &TypeMismatchError{
		Op:  name,
		Msg: fmt.Sprintf(format, v...),
	}
}

// Errorf returns a TypeMismatchError attributed to the named builtin.  It is
// meant for host libraries.
func Errorf(name string, format string, v ...interface{}) error {
	return berrf(name, format, v...)
}

// CheckArity returns an ArityError unless len(args) == n.
func CheckArity(name string, args []*LVal, n int) error {
	if len(args) != n {
		return &ArityError{Name: name, Want: n, Got: len(args)}
	}
	return nil
}

// CheckArityAtLeast returns an ArityError unless len(args) >= n.
func CheckArityAtLeast(name string, args []*LVal, n int) error {
	if len(args) < n {
		return &ArityError{Name: name, Want: n, Got: len(args), AtLeast: true}
	}
	return nil
}

// StackError associates the call stack at the point of failure with an
// error.  Error and Unwrap are transparent so errors.As reaches the cause.
type StackError struct {
	Err   error
	Stack *CallStack
}

func (e *StackError) Error() string {
	return e.Err.Error()
}

func (e *StackError) Unwrap() error {
	return e.Err
}

// ErrorStack returns the call stack attached to err, or nil.
func ErrorStack(err error) *CallStack {
	var serr *StackError
	if errors.As(err, &serr) {
		return serr.Stack
	}
	return nil
}

// FormatError returns a diagnostic for err.  When withStack is true and err
// carries a call stack the stack trace follows the message.
func FormatError(err error, withStack bool) string {
	var buf strings.Builder
	buf.WriteString(err.Error())
	if !withStack {
		return buf.String()
	}
	if stack := ErrorStack(err); stack != nil && len(stack.Frames) > 0 {
		buf.WriteString("\n")
		stack.DebugPrint(&buf)
	}
	return strings.TrimRight(buf.String(), "\n")
}
