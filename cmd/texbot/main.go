// Package main is the entry point for the texbot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/f3rmion/texbot/cmd/texbot/cmd"
	"github.com/f3rmion/texbot/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
