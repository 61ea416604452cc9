package config

// This file implements CLI flag parsing and help text. Flags follow GNU
// conventions (-k, --keep-original) and may appear anywhere among the
// input files.

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// colorFlags holds --color/--no-color, applied after Parse so the default
// holds unless one is passed.
type colorFlags struct {
	forceColor bool
	noColor    bool
}

// ParseFlags parses args (without the program name) into cfg. Parse
// failures are returned as *ConfigError. --help and --version only set
// ShowHelp/ShowVersion; printing is left to the caller.
func ParseFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("webpix", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	var cf colorFlags
	defineConversionFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &cf)
	defineUtilityFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return &ConfigError{Field: "flags", Msg: "invalid arguments", Err: err}
	}

	if cf.noColor {
		cfg.ColorMode = ColorNever
	} else if cf.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.Files = append(cfg.Files[:0], fs.Args()...)
	return nil
}

// defineConversionFlags registers -o, -k, -q, -j, -f, -n.
func defineConversionFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.OutputBase, "output", "o", cfg.OutputBase, "Base name for output files")
	fs.BoolVarP(&cfg.KeepOriginal, "keep-original", "k", cfg.KeepOriginal, "Keep the original files after conversion")
	fs.Float32VarP(&cfg.Quality, "quality", "q", cfg.Quality, "WebP quality (1-100)")
	fs.IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "Parallel conversions (0 = one per CPU)")
	fs.BoolVarP(&cfg.Force, "force", "f", cfg.Force, "Overwrite existing output files")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "Show planned outputs without writing")
}

// defineDisplayFlags registers --color, --no-color, --verbose, --log, --sentry-dsn.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, cf *colorFlags) {
	fs.BoolVar(&cf.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&cf.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.SentryDSN, "sentry-dsn", cfg.SentryDSN, "Report failures to Sentry")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run codec diagnostics and exit")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "Print version and exit")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "Show this help and exit")
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "webpix v" + version + " - batch image optimizer for the web"},
		{"", ""},
		{"  webpix [OPTIONS] <file>... | <pattern>", ""},
		{"", ""},
		{"Conversion", ""},
		{"  -o, --output <name>", "Base name for output files (numbered for batches)"},
		{"  -k, --keep-original", "Keep the original files after conversion"},
		{"  -q, --quality <1-100>", fmt.Sprintf("WebP quality (default: %d)", DefaultQuality)},
		{"  -j, --workers <n>", "Parallel conversions (default: one per CPU)"},
		{"  -f, --force", "Overwrite existing output files"},
		{"  -n, --dry-run", "Show planned outputs without writing"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --sentry-dsn <dsn>", "Report failures to Sentry (env WEBPIX_SENTRY_DSN)"},
		{"", ""},
		{"Utility", ""},
		{"  -c, --check", "Codec diagnostics (decoders, WebP encoder)"},
		{"  -v, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(w)
		case l.desc == "":
			fmt.Fprintln(w, l.flags)
		case l.flags == "":
			fmt.Fprintln(w, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(w, "%s%s%s\n", l.flags, strings.Repeat(" ", padding), l.desc)
		}
	}
}
