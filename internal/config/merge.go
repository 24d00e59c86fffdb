package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion = "version"
	keyPager   = "pager"
	keyOutput  = "output"
	keyLogging = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion: true,
	keyPager:   true,
	keyOutput:  true,
	keyLogging: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Sections absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	// Discover which top-level keys are present in the overlay.
	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so we can unmarshal it onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection unmarshals raw YAML bytes into the correct field of target
// based on the given key name. Each section is decoded onto a copy of the
// current section, so fields the overlay omits keep their previous values.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyVersion:
		var v string
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Version = v
		return nil
	case keyPager:
		v := target.Pager
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Pager = v
		return nil
	case keyOutput:
		v := target.Output
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
		return nil
	case keyLogging:
		v := target.Logging
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	default:
		return fmt.Errorf("unknown config section %q", key)
	}
}
