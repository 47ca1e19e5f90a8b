package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive playground",
	Long: `Launch an interactive terminal playground for trying notation and posts.

Features:
  - Live expansion of math shorthand as you type
  - Per-stage trace of the expansion
  - Live classification of pasted channel posts

Controls:
  Tab      Switch expand/classify
  Ctrl+T   Toggle stage trace
  Ctrl+Y   Copy output
  F1       Help
  Esc      Quit`,
	Args: cobra.NoArgs,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
