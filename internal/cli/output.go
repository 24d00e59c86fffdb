package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/config"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// yamlIndent is the indentation used for YAML output.
const yamlIndent = 2

// printer formats numbers with thousands separators.
//
//nolint:gochecknoglobals // Printer is immutable after construction.
var printer = message.NewPrinter(language.English)

// resolveOutputFormat returns the --output flag value, falling back to the
// configured default.
func resolveOutputFormat(flag string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case outputTable, outputJSON, outputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", flag)
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}
