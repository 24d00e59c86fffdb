package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagenav CLI.
// It loads configuration, wires up logging and tracing, and registers the
// window, render, browse, serve, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "pagenav",
		Short:         "Page-number navigation for terminals and HTML",
		Long:          "pagenav: compute page-number windows and render page navigation controls",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			startDir, _ := os.Getwd()
			if _, err := config.LoadGlobal(configPath, startDir); err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $PAGENAV_HOME/config.yaml or ~/.pagenav/config.yaml)")
	cmd.AddCommand(
		NewWindowCmd(),
		NewRenderCmd(),
		NewBrowseCmd(),
		NewServeCmd(),
		newConfigCmd(),
		NewVersionCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Show which page numbers are visible on page 12 of 50
  pagenav window --page 12 --total 50

  # Same, for 1,234 items at 25 per page, as JSON
  pagenav window --page 12 --items 1234 --page-size 25 --output json

  # Render the control for the current terminal
  pagenav render --page 12 --total 50

  # Render HTML with links
  pagenav render --page 12 --total 50 --format html --url-template '/items?page=%d'

  # Page through a log file interactively
  pagenav browse /var/log/syslog

  # Serve a demo page
  pagenav serve --total 40 --addr :8080`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
