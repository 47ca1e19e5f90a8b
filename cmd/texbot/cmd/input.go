package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput joins args into one line, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return readAll(cmd.InOrStdin())
}

// readFileOrStdin reads path, or stdin when path is empty or "-".
func readFileOrStdin(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		return readAll(cmd.InOrStdin())
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return readAll(f)
}

// readAll normalizes line endings and drops the trailing newline editors add,
// so a closing hashtag stays on the last line.
func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimRight(text, "\n"), nil
}
