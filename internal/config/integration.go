package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// configFileName is the name of both the user config file and the
// project-local overlay.
const configFileName = "config.yaml"

// projectFileName is the project-local overlay looked up from the working directory.
const projectFileName = ".pagenav.yaml"

// GlobalConfig holds the global configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfigInit flag
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized

// InitGlobalConfig initializes the global configuration with defaults.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	GlobalConfig = New()
	globalConfigInit = true
}

// SetGlobalConfig replaces the global configuration, typically with the
// result of Load at CLI startup.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = cfg
	globalConfigInit = cfg != nil
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	cfg := GetGlobalConfig()
	return cfg.Output.DefaultFormat
}

// GetPagerConfig returns a copy of the pager section of the global configuration.
func GetPagerConfig() PagerConfig {
	cfg := GetGlobalConfig()
	return cfg.Pager
}

// LoadGlobal loads the configuration from path (or the default path when empty),
// overlays the nearest project-local .pagenav.yaml found from startDir, applies
// environment overrides, and installs the result as the global configuration.
// Only the default file may be absent; an explicit path must exist.
func LoadGlobal(path, startDir string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if projectPath := FindProjectConfig(startDir); projectPath != "" {
		if err = ShallowMergeYAML(cfg, projectPath); err != nil {
			return nil, err
		}
		// Environment wins over every file, so re-apply it after the overlay.
		if err = ApplyEnv(cfg); err != nil {
			return nil, err
		}
		if err = cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	SetGlobalConfig(cfg)
	return cfg, nil
}

// FindProjectConfig walks up from startDir looking for a .pagenav.yaml file.
// Returns the absolute path of the first match, or "" if none exists.
func FindProjectConfig(startDir string) string {
	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, projectFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// EnsureLogDir ensures the directory for the configured log file exists.
// If no log file is configured, it does nothing.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	return ensureParentDir(cfg.Logging.File)
}

// ensureParentDir creates the parent directory of path with permission 0700.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	return nil
}

// GetConfigDir returns the path to the pagenav configuration directory.
// PAGENAV_HOME overrides the default of ~/.pagenav.
func GetConfigDir() (string, error) {
	if home := os.Getenv("PAGENAV_HOME"); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pagenav"), nil
}

// DefaultConfigPath returns the path of the user configuration file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
