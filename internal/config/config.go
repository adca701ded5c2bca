// Package config loads the optional YAML file that overrides goedit's
// compiled-in tunables (tab stop, quit-times threshold, message bar TTL,
// and per-filetype keyword additions), per SPEC_FULL.md §4.12.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Tunables mirrors editor.Tunables; kept as its own type so this package
// has no import-time dependency on internal/editor (SPEC_FULL.md §9: the
// core package never imports config or obslog directly).
type Tunables struct {
	TabStop       int                 `yaml:"tab_stop"`
	QuitTimes     int                 `yaml:"quit_times"`
	MessageTTL    time.Duration       `yaml:"message_ttl"`
	ExtraKeywords map[string][]string `yaml:"extra_keywords"`
}

// Load reads path and unmarshals it as YAML. A missing file is not an
// error: it returns the zero-value Tunables, which reproduces the spec's
// compiled-in defaults. A malformed file is reported as an error and
// leaves the return value at its zero value.
func Load(path string) (Tunables, error) {
	var t Tunables
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return t, nil
}

// DefaultPath resolves the config path SPEC_FULL.md §4.12 names:
// $XDG_CONFIG_HOME/goedit/config.yaml, falling back to
// ~/.config/goedit/config.yaml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goedit", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "goedit", "config.yaml")
}
