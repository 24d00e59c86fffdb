package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/config"
)

// newDefaultTarget returns a Config with known non-default values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	cfg := config.New()
	cfg.Pager.WideCount = 12
	cfg.Pager.HighlightColor = "#112233"
	cfg.Pager.Labels.Prev = "prev"
	cfg.Output.DefaultFormat = "json"
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "json"
	return cfg
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "yaml", target.Output.DefaultFormat)
	assert.Equal(t, 12, target.Pager.WideCount)
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_SectionFieldsKeepPreviousValues(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
pager:
  narrow_count: 3
  labels:
    next: more
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 3, target.Pager.NarrowCount)
	assert.Equal(t, 12, target.Pager.WideCount)
	assert.Equal(t, "#112233", target.Pager.HighlightColor)
	assert.Equal(t, "more", target.Pager.Labels.Next)
	assert.Equal(t, "prev", target.Pager.Labels.Prev)
}

func TestShallowMergeYAML_ZeroValueFieldsReplaceDefaults(t *testing.T) {
	target := newDefaultTarget()
	target.Pager.HideOnNarrow = true
	overlay := writeOverlay(t, `
pager:
  hide_on_narrow: false
logging:
  file: ""
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.False(t, target.Pager.HideOnNarrow)
	assert.Empty(t, target.Logging.File)
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_Version(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "version: 1.2.0\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "1.2.0", target.Version)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "pager: [unclosed\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		overlay := writeOverlay(t, "pager:\n  wide_count: many\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "pager"`)
	})
}
