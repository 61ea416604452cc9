// Package config holds runtime configuration: defaults, CLI flag parsing, and
// a single validation pass. A validated Config is frozen into a [Request],
// the immutable value the conversion pipeline consumes.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
)

// DefaultQuality is the WebP quality used when -q is not given.
const DefaultQuality = 75

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by [ParseFlags], then checked once by [Config.Validate].
type Config struct {
	// Inputs (positional args; glob patterns are expanded by the pipeline).
	Files []string

	// Conversion.
	OutputBase   string  // -o: base name for outputs; empty means random names.
	KeepOriginal bool    // -k: do not delete sources after conversion.
	Quality      float32 // -q: WebP quality in [1,100]. Default: 75.
	Workers      int     // -j: parallel conversions; 0 means one per CPU.
	Force        bool    // -f: overwrite existing output files.
	DryRun       bool    // -n: report planned outputs only.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
	SentryDSN string    // Optional; default from WEBPIX_SENTRY_DSN.

	// Thin CLI actions, handled by main.
	ShowHelp    bool
	ShowVersion bool
}

// Request is the validated, immutable input of one batch run.
type Request struct {
	Files        []string
	OutputBase   string
	KeepOriginal bool
	Quality      float32
	Workers      int
	Force        bool
	DryRun       bool
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Quality:   DefaultQuality,
		ColorMode: ColorAuto,
		SentryDSN: os.Getenv("WEBPIX_SENTRY_DSN"),
	}
}

// Validate checks every setting once, before any file is touched. All
// failures are *ConfigError. In CheckOnly mode inputs are not required.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return &ConfigError{Field: "color", Msg: "invalid color mode (use 'auto', 'always' or 'never')"}
	}
	if c.CheckOnly {
		return nil
	}

	if len(c.Files) == 0 {
		return &ConfigError{Field: "files", Msg: "no input files"}
	}
	if err := ValidateQuality(c.Quality); err != nil {
		return err
	}
	if err := validateBaseName(c.OutputBase); err != nil {
		return err
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Msg: "workers must not be negative"}
	}
	return nil
}

// ValidateQuality reports whether q is a usable WebP quality.
func ValidateQuality(q float32) error {
	f := float64(q)
	if math.IsNaN(f) || f < 1 || f > 100 {
		return &ConfigError{Field: "quality", Msg: "quality must be a number between 1 and 100"}
	}
	return nil
}

// validateBaseName rejects base names that would place output outside the
// source directory.
func validateBaseName(name string) error {
	if name == "" {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		return &ConfigError{Field: "output", Msg: "output name must not be blank"}
	}
	if name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return &ConfigError{Field: "output", Msg: "output name must be a file name, not a path: " + name}
	}
	return nil
}

// Request freezes the configuration into the value handed to the pipeline.
// Call only after Validate succeeded.
func (c *Config) Request() Request {
	return Request{
		Files:        append([]string(nil), c.Files...),
		OutputBase:   c.OutputBase,
		KeepOriginal: c.KeepOriginal,
		Quality:      c.Quality,
		Workers:      c.Workers,
		Force:        c.Force,
		DryRun:       c.DryRun,
	}
}
