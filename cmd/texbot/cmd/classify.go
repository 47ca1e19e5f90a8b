package cmd

import (
	"fmt"

	"github.com/f3rmion/texbot/internal/logging"
	"github.com/f3rmion/texbot/internal/post"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Format a channel post as schedule, news or subject",
	Long: `Classify reads one channel message and prints it in canonical form:

  - a weekday on the first line gives a 📝 schedule post tagged #расписание
  - a trailing #новости gives a 📰 news post
  - any other trailing #subject[_qualifier] gives a 📓 subject post

Messages that match none of these, or are already formatted, produce no
output. Use --passthrough to echo them instead.

Example:
  texbot classify post.txt
  printf 'пятница\n1. Алгебра' | texbot classify`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("copy", false, "copy the formatted post to the clipboard")
	classifyCmd.Flags().Bool("passthrough", false, "print unmatched text unchanged")
}

func runClassify(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	input, err := readFileOrStdin(cmd, path)
	if err != nil {
		return err
	}

	classifier := post.NewClassifier(settings.Weekdays)
	p, ok := classifier.Parse(input)
	if !ok {
		logging.Logger.Infow("unchanged",
			logging.FieldCommand, cmd.Name(),
			logging.FieldInput, len(input))
		if passthrough, _ := cmd.Flags().GetBool("passthrough"); passthrough {
			fmt.Fprintln(cmd.OutOrStdout(), input)
		}
		return nil
	}

	output := p.String()
	logging.Logger.Debugw("classified",
		logging.FieldCommand, cmd.Name(),
		logging.FieldKind, p.Kind.String(),
		logging.FieldOutput, len(output))

	fmt.Fprintln(cmd.OutOrStdout(), output)
	copyOutput(cmd, output)
	return nil
}
