// Package config holds runtime configuration: defaults, an optional TOML
// settings file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// --- Enum types for validated string fields ---

// OutputFormat selects how bake sets are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text" // Human-readable report through the logger (default).
	FormatYAML OutputFormat = "yaml" // YAML document on stdout.
	FormatJSON OutputFormat = "json" // JSON document on stdout.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] when a settings file is given, then by [ParseFlags].
type Config struct {
	// Input (set from the positional arg).
	ScenePath string `toml:"-"`

	// Selection override. Empty means use the selection stored in the scene.
	Select []string `toml:"select"`

	// Reporting.
	Format OutputFormat `toml:"format"` // Default: "text".

	// Bake simulation.
	BakeMode     string `toml:"bake_mode"`     // Default: "normal_tangent". Drives texture names.
	DryBake      bool   `toml:"dry_bake"`      // Backup → swap → restore round trip per set.
	BackupMarker string `toml:"backup_marker"` // Default: "backup_".
	Isolate      bool   `toml:"isolate"`       // Default: true. Hide non-members from render during a dry bake.

	// Display and logging.
	Verbose   bool      `toml:"verbose"`
	ColorMode ColorMode `toml:"color"`    // Default: "auto".
	LogFile   string    `toml:"log_file"` // Optional log file path.
	CheckOnly bool      `toml:"-"`        // Run --check diagnostics and exit.
	Watch     bool      `toml:"watch"`    // Re-run when scene files change.
	NoBanner  bool      `toml:"no_banner"`

	// Settings file (set by --config).
	ConfigFile string `toml:"-"`
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [LoadFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Format:       FormatText,
		BakeMode:     "normal_tangent",
		DryBake:      false,
		BackupMarker: "backup_",
		Isolate:      true,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// LoadFile applies a TOML settings file on top of cfg. Keys absent from the
// file keep their current values.
func LoadFile(cfg *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

// Validate checks that enum fields hold valid values, requires a scene
// path, and expands a leading "~" in path fields.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML, FormatJSON:
		// valid
	default:
		return errors.New("invalid format (use 'text', 'yaml' or 'json')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.BakeMode) == "" {
		return errors.New("bake mode must not be empty")
	}
	if c.BackupMarker == "" {
		return errors.New("backup marker must not be empty")
	}

	c.Select = normalizeSelection(c.Select)

	if c.ScenePath == "" {
		return errors.New("need exactly one scene file or directory")
	}
	return c.expandPaths()
}

// expandPaths resolves "~/" prefixes in the scene and log paths.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.ScenePath, &c.LogFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// normalizeSelection trims names, drops empties, and splits comma lists so
// "--select a,b" and repeated flags behave the same.
func normalizeSelection(names []string) []string {
	var out []string
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
