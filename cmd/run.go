package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}

		env, err := newEnv(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}
		for i := range sources {
			err := runSource(cmd, env, args[i], sources[i])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), lisp.FormatError(err, rootDebugStack))
				os.Exit(1)
			}
		}
	},
}

// runSource evaluates every form in source.  When runPrint is set the value
// of each form is printed.
func runSource(cmd *cobra.Command, env *lisp.LEnv, name string, source []byte) error {
	if !runPrint {
		_, err := env.Load(name, bytes.NewReader(source))
		return err
	}
	exprs, err := env.Runtime.Reader.Read(name, bytes.NewReader(source))
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		v, err := env.Eval(expr)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Readable())
	}
	return nil
}

func runReadSources(args []string) ([][]byte, error) {
	sources := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			sources[i] = []byte(args[i])
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = b
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
