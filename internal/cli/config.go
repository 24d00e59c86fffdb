package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
)

// ErrConfigExists is returned by config init when the file is already present.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command, which writes the default
// configuration to the user config file.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $PAGENAV_HOME/config.yaml (default ~/.pagenav/config.yaml) with
default values. Project-specific settings can be placed in a .pagenav.yaml
file, which overrides the user file for the directory tree it lives in.`,
		Example: `  # Create the user configuration
  pagenav config init

  # Overwrite an existing configuration
  pagenav config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return ErrConfigExists
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err = config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration after files and environment overrides are applied.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  pagenav config show
  pagenav config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output
			if format != outputJSON {
				format = outputYAML
			}
			return writeStructured(cmd.OutOrStdout(), format, config.GetGlobalConfig())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: yaml or json")

	return cmd
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file given by --config (default
$PAGENAV_HOME/config.yaml) for syntax, schema version and value ranges.`,
		Example: `  # Validate the user configuration
  pagenav config validate

  # Validate a specific file
  pagenav config validate --config ./team.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot read configuration %s: %w", path, err)
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Printf("Configuration is valid: %s\n", path)
			return nil
		},
	}

	return cmd
}
