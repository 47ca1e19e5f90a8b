package cmd

import (
	"fmt"

	"github.com/f3rmion/texbot/internal/logging"
	"github.com/f3rmion/texbot/internal/notation"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [text...]",
	Short: "Rewrite math shorthand into Unicode",
	Long: `Expand rewrites TeX-like shorthand: powers and indices become
superscripts and subscripts, macros and operators become symbols, and
function names and constants are normalized.

Text without any shorthand is printed unchanged. With no arguments the text
is read from stdin.

Example:
  texbot expand 'x^(-3) + a1 -> \alpha'
  echo 'sqrt(2) != pi' | texbot expand --trace`,
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().Bool("copy", false, "copy the result to the clipboard")
	expandCmd.Flags().Bool("trace", false, "print the text after every stage that changed it to stderr")
}

func runExpand(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	results := notation.New().Trace(input)
	output := input
	if n := len(results); n > 0 {
		output = results[n-1].Output
	}

	trace, _ := cmd.Flags().GetBool("trace")
	for _, r := range results {
		if !r.Changed {
			continue
		}
		logging.Logger.Debugw("stage applied", logging.FieldStage, r.Stage)
		if trace {
			fmt.Fprintf(cmd.ErrOrStderr(), "%-14s %s\n", r.Stage, r.Output)
		}
	}

	logging.Logger.Debugw("expanded",
		logging.FieldCommand, cmd.Name(),
		logging.FieldInput, len(input),
		logging.FieldOutput, len(output))

	fmt.Fprintln(cmd.OutOrStdout(), output)
	copyOutput(cmd, output)
	return nil
}
