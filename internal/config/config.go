// Package config manages hwpinspect's persisted configuration: the
// engine tunables spec.md §9 leaves as open questions, plus CLI display
// preferences.
package config

import "github.com/hwp5go/hwp5/internal/hwp5"

// Config is hwpinspect's on-disk configuration.
type Config struct {
	Writer  WriterConfig  `yaml:"writer"`
	Display DisplayConfig `yaml:"display"`
}

// WriterConfig holds the Writer tunables spec.md §9 calls out as open
// questions rather than fixed constants.
type WriterConfig struct {
	// ReservedByte3 is FileHeader's reserved byte 3 (spec.md §4.4.1,
	// §9): "0x04, discovered empirically ... if a target accepts 0x00,
	// prefer 0x00; otherwise keep 0x04."
	ReservedByte3 byte `yaml:"reserved_byte_3"`
	// Version is the HWP version quad the Writer stamps on every file
	// it produces (spec.md §4.4.1).
	Version VersionConfig `yaml:"version"`
}

// VersionConfig mirrors hwp5.Version for YAML (un)marshaling.
type VersionConfig struct {
	Major    uint8 `yaml:"major"`
	Minor    uint8 `yaml:"minor"`
	Build    uint8 `yaml:"build"`
	Revision uint8 `yaml:"revision"`
}

// DisplayConfig controls how hwpinspect renders its trees and tables.
type DisplayConfig struct {
	Color       bool `yaml:"color"`
	TreeIndent  int  `yaml:"tree_indent"`
}

// DefaultConfig returns hwpinspect's default configuration: the Writer
// policy spec.md §4.6 step 4 prescribes, and a colorized, two-space
// indented display.
func DefaultConfig() *Config {
	return &Config{
		Writer: WriterConfig{
			ReservedByte3: 0x04,
			Version: VersionConfig{
				Major: hwp5.DefaultVersion.Major, Minor: hwp5.DefaultVersion.Minor,
				Build: hwp5.DefaultVersion.Build, Revision: hwp5.DefaultVersion.Revision,
			},
		},
		Display: DisplayConfig{Color: true, TreeIndent: 2},
	}
}

// ColorEnabled reports whether CLI output should be colorized.
// EnvNoColor, when set to a truthy value, always disables it; otherwise
// it follows Display.Color.
func (c *Config) ColorEnabled() bool {
	if GetEnvBool(EnvNoColor) {
		return false
	}
	return c.Display.Color
}

// Apply pushes this configuration's Writer tunables into the hwp5
// package's package-level policy variables (spec.md §9: "treat as a
// tunable constant").
func (c *Config) Apply() {
	hwp5.ReservedByte3 = c.Writer.ReservedByte3
	hwp5.DefaultVersion = hwp5.Version{
		Major: c.Writer.Version.Major, Minor: c.Writer.Version.Minor,
		Build: c.Writer.Version.Build, Revision: c.Writer.Version.Revision,
	}
}
