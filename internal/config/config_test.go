package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 10, cfg.Pager.WideCount)
	assert.Equal(t, 5, cfg.Pager.NarrowCount)
	assert.Equal(t, 80, cfg.Pager.NarrowWidth)
	assert.Equal(t, 5, cfg.Pager.ArrowThreshold)
	assert.Equal(t, "<", cfg.Pager.Labels.Prev)
	assert.Equal(t, "+10", cfg.Pager.Labels.JumpForward)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_PartialSectionKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
pager:
  highlight_color: "#FF0000"
  labels:
    prev: "prev"
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.Pager.HighlightColor)
	assert.Equal(t, 10, cfg.Pager.WideCount, "omitted keys keep defaults")
	assert.Equal(t, "prev", cfg.Pager.Labels.Prev)
	assert.Equal(t, ">", cfg.Pager.Labels.Next)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "pager: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing overlay YAML")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "logging:\n  level: warn\n")

	t.Setenv("PAGENAV_LOG_LEVEL", "error")
	t.Setenv("PAGENAV_HIDE_ON_NARROW", "true")
	t.Setenv("PAGENAV_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.True(t, cfg.Pager.HideOnNarrow)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `version: "2.1.0"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedConfigVersion)
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, CheckVersion(""))
	assert.NoError(t, CheckVersion("1.0.0"))
	assert.NoError(t, CheckVersion("1.4.2"))
	assert.ErrorIs(t, CheckVersion("0.9.0"), ErrUnsupportedConfigVersion)
	assert.ErrorIs(t, CheckVersion("2.0.0"), ErrUnsupportedConfigVersion)
	assert.ErrorIs(t, CheckVersion("not-a-version"), ErrUnsupportedConfigVersion)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "zero wide count", mutate: func(c *Config) { c.Pager.WideCount = 0 }, wantErr: "pager.wide_count"},
		{name: "narrow above wide", mutate: func(c *Config) { c.Pager.NarrowCount = 20 }, wantErr: "pager.narrow_count"},
		{name: "zero narrow width", mutate: func(c *Config) { c.Pager.NarrowWidth = 0 }, wantErr: "pager.narrow_width"},
		{name: "zero arrow threshold", mutate: func(c *Config) { c.Pager.ArrowThreshold = 0 }, wantErr: "pager.arrow_threshold"},
		{name: "bad color", mutate: func(c *Config) { c.Pager.HighlightColor = "purple" }, wantErr: "pager.highlight_color"},
		{name: "bad format", mutate: func(c *Config) { c.Output.DefaultFormat = "xml" }, wantErr: "output.default_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateJoinsErrors(t *testing.T) {
	cfg := New()
	cfg.Pager.WideCount = 0
	cfg.Output.DefaultFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pager.wide_count")
	assert.Contains(t, err.Error(), "output.default_format")
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := New()
	cfg.Pager.HideOnNarrow = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestShallowMergeYAML(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, ShallowMergeYAML(nil, "x.yaml"))
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overlay.yaml")
		writeFile(t, path, "plugins:\n  foo: {}\noutput:\n  default_format: yaml\n")

		cfg := New()
		require.NoError(t, ShallowMergeYAML(cfg, path))
		assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overlay.yaml")
		writeFile(t, path, "# only a comment\n")

		cfg := New()
		require.NoError(t, ShallowMergeYAML(cfg, path))
		assert.Equal(t, New(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		err := ShallowMergeYAML(New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "table", GetDefaultOutputFormat())
	assert.Same(t, cfg, GetGlobalConfig())

	custom := New()
	custom.Pager.WideCount = 7
	SetGlobalConfig(custom)
	assert.Equal(t, 7, GetPagerConfig().WideCount)

	ResetGlobalConfigForTest()
	assert.NotSame(t, custom, GetGlobalConfig())
}

func TestLoadGlobal_ProjectOverlay(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	home := t.TempDir()
	t.Setenv("PAGENAV_HOME", home)
	writeFile(t, filepath.Join(home, "config.yaml"), "pager:\n  wide_count: 8\n")

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".pagenav.yaml"), "pager:\n  narrow_count: 3\n")
	sub := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o700))

	cfg, err := LoadGlobal("", sub)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Pager.WideCount)
	assert.Equal(t, 3, cfg.Pager.NarrowCount)
	assert.Same(t, cfg, GetGlobalConfig())
}

func TestLoadGlobal_MissingFile(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	t.Setenv("PAGENAV_HOME", t.TempDir())

	t.Run("default path falls back to defaults", func(t *testing.T) {
		cfg, err := LoadGlobal("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, New().Pager.WideCount, cfg.Pager.WideCount)
	})

	t.Run("explicit path is an error", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "team.yaml")
		cfg, err := LoadGlobal(missing, t.TempDir())
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), missing)
	})
}

func TestFindProjectConfig(t *testing.T) {
	assert.Empty(t, FindProjectConfig(""))

	dir := t.TempDir()
	assert.Empty(t, FindProjectConfig(dir))

	writeFile(t, filepath.Join(dir, ".pagenav.yaml"), "{}\n")
	assert.Equal(t, filepath.Join(dir, ".pagenav.yaml"), FindProjectConfig(dir))
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("PAGENAV_HOME", "/custom/home")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", dir)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/home", "config.yaml"), path)
}

func TestEnsureLogDir(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logFile := filepath.Join(t.TempDir(), "logs", "pagenav.log")
	GetGlobalConfig().Logging.File = logFile

	require.NoError(t, EnsureLogDir())
	stat, err := os.Stat(filepath.Dir(logFile))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)
	assert.Equal(t, "debug", out.Level)

	lc.File = "/tmp/pagenav.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/pagenav.log", out.File)
}

func TestToPagerOptions(t *testing.T) {
	pc := New().Pager
	pc.NarrowWidth = 100
	pc.HideOnNarrow = true
	pc.Labels.Prev = "prev"

	opts := pc.ToPagerOptions()
	assert.Equal(t, 10, opts.WideCount)
	assert.Equal(t, 5, opts.NarrowCount)
	assert.Equal(t, 100, opts.NarrowWidth)
	assert.Equal(t, 5, opts.ArrowThreshold)
	assert.True(t, opts.HideOnNarrow)
	assert.Equal(t, "prev", opts.Labels.Prev)
	assert.Equal(t, "+10", opts.Labels.JumpForward)
	assert.Zero(t, opts.TotalPages)
}
