// Package config loads pagenav configuration from YAML files and environment
// variables and exposes it through a process-wide singleton.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/pagination"
)

// CurrentVersion is the config schema version written by this build.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of config schema versions this build reads.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// Defaults for the pager section.
const (
	DefaultNarrowWidth    = 80
	DefaultArrowThreshold = 5
	DefaultHighlightColor = "#7D56F4"
	DefaultOutputFormat   = "table"
)

// ErrUnsupportedConfigVersion is returned when a config file declares a schema
// version outside the supported range.
var ErrUnsupportedConfigVersion = errors.New("unsupported config version")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// validOutputFormats lists the accepted output.default_format values.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var validOutputFormats = map[string]bool{"table": true, "json": true, "yaml": true}

// Config is the top-level pagenav configuration.
type Config struct {
	Version string        `yaml:"version"`
	Pager   PagerConfig   `yaml:"pager"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// PagerConfig controls the page-number control.
type PagerConfig struct {
	WideCount      int          `yaml:"wide_count"`
	NarrowCount    int          `yaml:"narrow_count"`
	NarrowWidth    int          `yaml:"narrow_width"`
	ArrowThreshold int          `yaml:"arrow_threshold"`
	HighlightColor string       `yaml:"highlight_color" env:"PAGENAV_HIGHLIGHT_COLOR"`
	HideOnNarrow   bool         `yaml:"hide_on_narrow"  env:"PAGENAV_HIDE_ON_NARROW"`
	Labels         LabelsConfig `yaml:"labels"`
}

// LabelsConfig holds the text shown on the non-numbered buttons.
type LabelsConfig struct {
	Prev        string `yaml:"prev"`
	Next        string `yaml:"next"`
	JumpBack    string `yaml:"jump_back"`
	JumpForward string `yaml:"jump_forward"`
}

// OutputConfig controls non-interactive command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"PAGENAV_OUTPUT_FORMAT"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"PAGENAV_LOG_LEVEL"`
	Format string `yaml:"format" env:"PAGENAV_LOG_FORMAT"`
	File   string `yaml:"file"   env:"PAGENAV_LOG_FILE"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: CurrentVersion,
		Pager: PagerConfig{
			WideCount:      pagination.DefaultDisplayCount,
			NarrowCount:    pagination.DefaultNarrowDisplayCount,
			NarrowWidth:    DefaultNarrowWidth,
			ArrowThreshold: DefaultArrowThreshold,
			HighlightColor: DefaultHighlightColor,
			Labels: LabelsConfig{
				Prev:        "<",
				Next:        ">",
				JumpBack:    "-10",
				JumpForward: "+10",
			},
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if it exists)
// and environment overrides, in that order, and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if err := ShallowMergeYAML(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays PAGENAV_* environment variables onto cfg.
// Unset variables leave the corresponding fields untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// CheckVersion reports whether the schema version v can be read by this build.
// An empty version is treated as the current one.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedConfigVersion, v)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported version range: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedConfigVersion, ver, supportedVersions)
	}
	return nil
}

// Validate checks the configuration and returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if err := CheckVersion(c.Version); err != nil {
		errs = append(errs, err)
	}

	p := c.Pager
	if p.WideCount < pagination.MinDisplayCount || p.WideCount > pagination.MaxDisplayCount {
		errs = append(errs, fmt.Errorf("pager.wide_count must be between %d and %d",
			pagination.MinDisplayCount, pagination.MaxDisplayCount))
	}
	if p.NarrowCount < pagination.MinDisplayCount || p.NarrowCount > p.WideCount {
		errs = append(errs, errors.New("pager.narrow_count must be >= 1 and <= pager.wide_count"))
	}
	if p.NarrowWidth < 1 {
		errs = append(errs, errors.New("pager.narrow_width must be >= 1"))
	}
	if p.ArrowThreshold < 1 {
		errs = append(errs, errors.New("pager.arrow_threshold must be >= 1"))
	}
	if p.HighlightColor != "" && !hexColorRe.MatchString(p.HighlightColor) {
		errs = append(errs, fmt.Errorf("pager.highlight_color %q must be a hex color like #7D56F4", p.HighlightColor))
	}

	if !validOutputFormats[c.Output.DefaultFormat] {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of table, json, yaml", c.Output.DefaultFormat))
	}

	return errors.Join(errs...)
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = ensureParentDir(path); err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
