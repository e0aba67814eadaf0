package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/parser"
	"github.com/chzyer/readline"
	isatty "github.com/mattn/go-isatty"
)

// DefaultPrompt is the prompt used by RunRepl when none is given.
const DefaultPrompt = "user> "

// Option configures RunRepl.
type Option func(*repl)

// WithStdin makes the repl read lines from r.  Line editing is only enabled
// when r is a terminal.
func WithStdin(r io.Reader) Option {
	return func(p *repl) { p.stdin = r }
}

// WithStdout makes the repl print results to w.
func WithStdout(w io.Writer) Option {
	return func(p *repl) { p.stdout = w }
}

// WithStderr makes the repl print errors to w.
func WithStderr(w io.Writer) Option {
	return func(p *repl) { p.stderr = w }
}

// WithDebugStack makes the repl print the lisp call stack after the message
// of an evaluation error.
func WithDebugStack(debug bool) Option {
	return func(p *repl) { p.debugStack = debug }
}

// WithHistoryFile persists interactive line history in path.
func WithHistoryFile(path string) Option {
	return func(p *repl) { p.history = path }
}

type repl struct {
	prompt     string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	debugStack bool
	history    string
}

// lineReader is a source of input lines.  ReadLine returns
// readline.ErrInterrupt when the user abandons the current line.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

// RunRepl runs a simple repl reading one form per line and evaluating it in
// env.  Errors are reported and the loop continues.  RunRepl returns nil
// when input is exhausted.
func RunRepl(env *lisp.LEnv, prompt string, opts ...Option) error {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	p := &repl{
		prompt: prompt,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	in, err := p.lineReader()
	if err != nil {
		return err
	}
	defer in.Close()

	for {
		line, err := in.ReadLine()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		out, err := Rep(env, line)
		if errors.Is(err, lisp.ErrNoForm) {
			continue
		}
		if err != nil {
			fmt.Fprintf(p.stderr, "error: %s\n", lisp.FormatError(err, p.debugStack))
			continue
		}
		fmt.Fprintln(p.stdout, out)
	}
}

// Rep reads the first form in line, evaluates it in env and returns its
// readable rendering.  When line holds no form the error matches
// lisp.ErrNoForm.
func Rep(env *lisp.LEnv, line string) (string, error) {
	expr, err := parser.Parse(line)
	if err != nil {
		return "", err
	}
	v, err := env.Eval(expr)
	if err != nil {
		return "", err
	}
	return v.Readable(), nil
}

func (p *repl) lineReader() (lineReader, error) {
	f, ok := p.stdin.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &scanLineReader{bufio.NewScanner(p.stdin)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          p.prompt,
		HistoryFile:     p.history,
		InterruptPrompt: "^C",
		Stdin:           f,
		Stdout:          p.stdout,
		Stderr:          p.stderr,
	})
	if err != nil {
		return nil, err
	}
	return &editLineReader{rl}, nil
}

// editLineReader provides line editing on a terminal.
type editLineReader struct {
	rl *readline.Instance
}

func (r *editLineReader) ReadLine() (string, error) {
	return r.rl.Readline()
}

func (r *editLineReader) Close() error {
	return r.rl.Close()
}

// scanLineReader reads lines from a pipe or file without echoing a prompt.
type scanLineReader struct {
	s *bufio.Scanner
}

func (r *scanLineReader) ReadLine() (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanLineReader) Close() error {
	return nil
}
