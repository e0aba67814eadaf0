package lisp

import (
	"io"
	"log"
	"os"
)

// Runtime is the state shared by every LEnv descending from one root
// environment.
type Runtime struct {
	Reader Reader
	Stdout io.Writer
	Stderr io.Writer
	Stack  *CallStack

	// Logger receives trace output for calls and macro expansions.  Tracing
	// is disabled when Logger is nil.
	Logger *log.Logger
}

// StandardRuntime returns a Runtime that writes to the process's standard
// output streams and has no Reader.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stack:  &CallStack{},
	}
}

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// Loader installs definitions into an environment, typically a library of
// builtins followed by bootstrap source.
type Loader func(env *LEnv) error

// WithReader returns a Config that makes environments use r to parse source
// text.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes environments write program output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stderr = w
		return nil
	}
}

// WithTrace returns a Config that enables trace logging of function calls
// and macro expansions to the runtime's Stderr.  WithTrace must come after
// any WithStderr Config.
func WithTrace() Config {
	return func(env *LEnv) error {
		env.Runtime.Logger = log.New(env.Runtime.Stderr, "trace: ", 0)
		return nil
	}
}

// WithLoader returns a Config that runs fn against the environment.  Loaders
// run in the order their Configs are given, so a Loader that evaluates
// source must come after WithReader.
func WithLoader(fn Loader) Config {
	return func(env *LEnv) error {
		return fn(env)
	}
}
