// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// ErrorPolicy controls what happens to unmatched files during commit.
type ErrorPolicy string

const (
	PolicyMark ErrorPolicy = "mark" // include under an UNMATCHED__ prefix (default)
	PolicyKeep ErrorPolicy = "keep" // include under the original name
	PolicySkip ErrorPolicy = "skip" // leave out of the output, with a warning
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
	// Paths (set from positional args).
	InputDir string
	Output   string // directory, or ZIP archive when the path ends in .zip

	// Reference dataset.
	RefPath     string // .xlsx, .xlsm or .csv
	Sheet       string // worksheet name; empty means first sheet
	MatchColumn string // column that identifies each file
	Template    string // rename template with {field} placeholders

	// Behavior.
	OnError ErrorPolicy // unmatched-file policy on commit. Default: mark.
	Workers int         // concurrent file reads during commit. Default: 4.
	DryRun  bool        // preview only

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // optional log file path
	CheckOnly bool      // inspect the reference file and exit
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		OnError:   PolicyMark,
		Workers:   4,
		ColorMode: ColorAuto,
	}
}

// ZipOutput reports whether the output path selects the ZIP archive sink.
func (c *Config) ZipOutput() bool {
	return strings.EqualFold(filepath.Ext(c.Output), ".zip")
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and required settings. In CheckOnly mode only
// the reference path is required; a full run additionally needs the match
// column, template, and both positional paths.
func (c *Config) Validate() error {
	switch c.OnError {
	case PolicyMark, PolicyKeep, PolicySkip:
		// valid
	default:
		return errors.New("invalid --on-error (use 'mark', 'keep' or 'skip')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Workers < 1 {
		return errors.New("--workers must be at least 1")
	}
	if c.RefPath == "" {
		return errors.New("--ref is required")
	}

	if c.CheckOnly {
		return nil
	}
	if c.MatchColumn == "" {
		return errors.New("--match-column is required")
	}
	if c.Template == "" {
		return errors.New("--template is required")
	}
	if c.InputDir == "" || c.Output == "" {
		return errors.New("need exactly input_dir and output (directory or .zip)")
	}
	return nil
}

// ValidatePaths ensures the resolved output is not inside (or equal to) the
// resolved input directory, which would let the tool rediscover its own
// output on a rerun. Both arguments must be absolute, symlink-resolved
// paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output must not be inside the input directory")
	}
	return nil
}
