// Package config holds runtime configuration: defaults, validation, and the
// optional YAML rules file that overrides the built-in keyword tables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings shared across subcommands. It is
// populated by [Default] and then mutated by CLI flags before being passed
// (by pointer) to the packages that need it.
type Config struct {
	// Target directory for rename and flatten (positional arg).
	Dir string

	// Behavior.
	DryRun  bool
	Workers int // Plan-phase parallelism for rename. Default: 4.
	Rolling int // Flatten passes. Default: 20.
	Retries int // Per-command retries for the queue. Default: 3.

	// Inputs.
	CommandFile string // Queue commands file; empty means stdin.
	RulesFile   string // YAML keyword/strip/glyph overrides; empty means built-ins.

	// Journal.
	JournalPath string // SQLite journal path; empty disables recording.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// Default returns a Config with all defaults set. The journal lives under
// the user's home directory so every run appends to the same history.
func Default() Config {
	return Config{
		Workers:     4,
		Rolling:     20,
		Retries:     3,
		ColorMode:   ColorAuto,
		JournalPath: defaultJournalPath(),
	}
}

func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tidybatch", "journal.db")
}

// NormalizeDirArg strips trailing slashes from a directory path. The
// filesystem root "/" is returned unchanged so we don't produce an empty
// string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and range fields.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Workers)
	}
	if c.Rolling < 1 {
		return fmt.Errorf("rolling passes must be at least 1 (got %d)", c.Rolling)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative (got %d)", c.Retries)
	}
	return nil
}

// RequireDir validates that Dir is set and points at an existing directory.
// Called by the subcommands that operate on a directory tree.
func (c *Config) RequireDir() error {
	if c.Dir == "" {
		return errors.New("need a target directory")
	}
	fi, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("target directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", c.Dir)
	}
	return nil
}
