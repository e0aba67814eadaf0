package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/lisp/lisplib"
	"github.com/bmatsuo/mlisp/parser"
	"github.com/spf13/cobra"
)

var (
	rootTrace      bool
	rootDebugStack bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mlisp",
	Short: "A minimal lisp interpreter",
	Long: `A minimal lisp interpreter.

Without a subcommand mlisp starts an interactive repl.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, "")
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootTrace, "trace", false,
		"Log function calls and macro expansions to stderr")
	rootCmd.PersistentFlags().BoolVar(&rootDebugStack, "debug-stack", false,
		"Print the lisp call stack with error messages")
}

// newEnv returns a root environment with the standard library loaded.
func newEnv(cmd *cobra.Command) (*lisp.LEnv, error) {
	config := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(cmd.OutOrStdout()),
		lisp.WithStderr(cmd.ErrOrStderr()),
		lisp.WithLoader(lisplib.LoadLibrary),
	}
	if rootTrace {
		config = append(config, lisp.WithTrace())
	}
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}
