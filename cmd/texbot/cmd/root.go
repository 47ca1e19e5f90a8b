// Package cmd contains all CLI commands for the texbot tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/texbot/internal/clipboard"
	"github.com/f3rmion/texbot/internal/config"
	"github.com/f3rmion/texbot/internal/logging"
	"github.com/f3rmion/texbot/internal/notation"
	"github.com/f3rmion/texbot/internal/post"
	"github.com/f3rmion/texbot/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags.
var Version = "v0.1.0"

var (
	cfgFile  string
	settings *config.Config
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.Write

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "texbot",
	Short: "Math shorthand expander and channel post formatter",
	Long: `texbot rewrites TeX-like math shorthand into Unicode and formats
school channel posts.

Notation:
  x^2 → x²   a1 → a₁   \alpha → α   -> → →   sqrt(4) → √4

Posts:
  - a weekday on the first line makes a schedule post
  - a trailing #новости makes a news post
  - any other trailing #subject makes a subject post

Running 'texbot' without arguments launches the interactive playground.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlayground,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "texbot", Version)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/texbot)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "log JSON lines to stderr")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig resolves the config directory and ENV variables.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	// TEXBOT_SPLIT_LINES, TEXBOT_LOG_LEVEL, ...
	viper.SetEnvPrefix("TEXBOT")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func getConfigPath() string {
	return filepath.Join(getConfigDir(), config.FileName)
}

// loadSettings reads the config file, applies flag and ENV overrides and
// sets up logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return err
	}

	applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return err
	}
	logging.Logger.Debugw("settings loaded",
		logging.FieldCommand, cmd.Name(),
		logging.FieldPath, getConfigPath())

	settings = cfg
	return nil
}

func applyOverrides(cfg *config.Config) {
	if viper.IsSet("split_lines") {
		cfg.SplitLines = viper.GetInt("split_lines")
	}
	if viper.IsSet("copy_to_clipboard") {
		cfg.CopyToClipboard = viper.GetBool("copy_to_clipboard")
	}
	if viper.IsSet("log_level") {
		cfg.Log.Level = viper.GetString("log_level")
	}
	if viper.GetBool("json_logs") {
		cfg.Log.JSON = true
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
}

// copyOutput copies text when asked to by flag or config. Failures are logged
// and never fail the command.
func copyOutput(cmd *cobra.Command, text string) {
	copyFlag, _ := cmd.Flags().GetBool("copy")
	if !copyFlag && !settings.CopyToClipboard {
		return
	}

	if err := copyToClipboard(text); err != nil {
		logging.Logger.Warnw("could not copy to clipboard",
			logging.FieldCommand, cmd.Name(),
			logging.FieldError, err)
		return
	}
	logging.Logger.Debugw("copied to clipboard", logging.FieldOutput, len(text))
}

// runPlayground launches the interactive playground.
func runPlayground(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		tui.NewApp(notation.New(), post.NewClassifier(settings.Weekdays)),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
