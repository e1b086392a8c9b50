// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Artifact source (positional arg plus download flags).
	Build    string // Build number, or a local artifact path with --no-download.
	Download bool   // Default: true. Cleared by --no-download.
	Branch   string // Build server branch. Default: "aosp-master".

	// Tree layout. Both are resolved against Root; no ambient working
	// directory is consulted.
	Root         string // Checkout directory the update operates in. Default: ".".
	MetadataPath string // Default: "ndk/meta/platforms.json".
	InstallDir   string // Default: "platform".

	// VCS behavior.
	Bug              string // Bug URL for the commit message. Default: "None".
	UseCurrentBranch bool   // Do not start a scratch branch for the update.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Download:     true,
		Branch:       "aosp-master",
		Root:         ".",
		MetadataPath: "ndk/meta/platforms.json",
		InstallDir:   "platform",
		Bug:          "None",
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and, when not in CheckOnly mode, that the
// build argument and tree paths are present.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.Build == "" {
		return errors.New("need a build number or artifact path")
	}
	if c.Root == "" || c.MetadataPath == "" || c.InstallDir == "" {
		return errors.New("root, metadata and install paths must not be empty")
	}
	return nil
}
