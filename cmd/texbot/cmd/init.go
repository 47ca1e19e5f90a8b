package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/texbot/internal/config"
	"github.com/f3rmion/texbot/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize texbot configuration",
	Long: `Initialize texbot configuration in your config directory.

This writes config.yaml with the defaults:
  - weekdays           (first-line names that start a schedule post)
  - split_lines        (lines per message for long help output)
  - copy_to_clipboard  (copy command output by default)
  - log                (level and JSON output)

Edit the file afterwards, for example to use weekday names in another language.`,
	// An existing file may be invalid; init must still be able to replace it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if viper.GetBool("verbose") {
			level = "debug"
		}
		return logging.Initialize(viper.GetBool("json_logs"), level)
	},
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := getConfigPath()

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	logging.Logger.Debugw("config written", logging.FieldPath, path)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized texbot configuration in %s\n\n", configDir)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Edit %s if your schedule posts use other weekday names\n", config.FileName)
	fmt.Fprintln(out, "  2. Run 'texbot expand x^2' to try the notation expander")
	fmt.Fprintln(out, "  3. Run 'texbot' to open the playground")

	return nil
}
