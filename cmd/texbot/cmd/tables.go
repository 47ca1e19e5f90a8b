package cmd

import (
	"fmt"

	"github.com/f3rmion/texbot/internal/render"
	"github.com/spf13/cobra"
)

var helpTablesCmd = &cobra.Command{
	Use:     "help-tables",
	Aliases: []string{"tables"},
	Short:   "Print the notation reference as chat HTML",
	Long: `Print the notation reference in three messages: the main macros,
the Greek letters, and the operators, functions and constants. The output
uses <b> and <code> markup for chat clients with HTML formatting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printMessages(cmd, render.HelpMessages())
		return nil
	},
}

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Print every supported macro, split into chat-sized messages",
	Long: `Print the full macro table. Long output is split into messages of
split_lines lines (see config.yaml or TEXBOT_SPLIT_LINES).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printMessages(cmd, render.MacroMessages(settings.SplitLines))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(helpTablesCmd)
	rootCmd.AddCommand(macrosCmd)
}

func printMessages(cmd *cobra.Command, messages []string) {
	out := cmd.OutOrStdout()
	for i, msg := range messages {
		if i > 0 {
			fmt.Fprintln(out, "\n---")
		}
		fmt.Fprintln(out, msg)
	}
}
