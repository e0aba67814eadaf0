package cmd

import (
	"github.com/bmatsuo/mlisp/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive repl",
	Long: `Start an interactive repl.

Each line is read as one form, evaluated, and its value printed.  Errors are
printed and do not end the session.  Ctrl-C clears the current line and
Ctrl-D exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, replPrompt)
	},
}

func runRepl(cmd *cobra.Command, prompt string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	return repl.RunRepl(env, prompt,
		repl.WithStdin(cmd.InOrStdin()),
		repl.WithStdout(cmd.OutOrStdout()),
		repl.WithStderr(cmd.ErrOrStderr()),
		repl.WithDebugStack(rootDebugStack),
		repl.WithHistoryFile(replHistory),
	)
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
		"Prompt displayed before each line of input")
	replCmd.Flags().StringVar(&replHistory, "history", "",
		"File used to persist line history")
}
