package config

// This file implements CLI flag parsing and help text on top of pflag,
// which gives GNU-style --long/-s flags without the stdlib double-dash
// quirks.

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (unknown flag, bad value, missing
// positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := pflag.NewFlagSet("renomeia", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs, version) }

	fs.StringVarP(&cfg.RefPath, "ref", "r", "", "Reference spreadsheet (.xlsx, .xlsm or .csv)")
	fs.StringVar(&cfg.Sheet, "sheet", "", "Worksheet name (default: first sheet)")
	fs.StringVarP(&cfg.MatchColumn, "match-column", "c", "", "Reference column that identifies each file")
	fs.StringVarP(&cfg.Template, "template", "t", "", `Rename template, e.g. "{nome} - {matricula}"`)
	fs.Var(&errorPolicyValue{&cfg.OnError}, "on-error", "Unmatched files on commit: mark | keep | skip")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Concurrent file reads during commit")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not copy or archive")

	var forceColor, noColor, showVersion bool
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Inspect the reference file and exit")
	fs.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		return err
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, "renomeia v"+version)
		os.Exit(0)
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	return parsePositionalArgs(fs, cfg)
}

// parsePositionalArgs sets InputDir and Output from the two positional args
// when not in CheckOnly mode.
func parsePositionalArgs(fs *pflag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly input_dir and output (directory or .zip)")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	cfg.Output = NormalizeDirArg(args[1])
	return nil
}

// printUsage writes the help text to stderr.
func printUsage(fs *pflag.FlagSet, version string) {
	fmt.Fprintf(os.Stderr, `renomeia v%s — renames files in bulk from a reference spreadsheet

Each file is matched to a spreadsheet row through the chosen column, and its
new name is rendered from the template. {extensao} stands for the original
extension; any other {field} takes the row's value for that column.

Usage:
  renomeia [OPTIONS] <input_dir> <output>

The output is a directory, or a ZIP archive when the path ends in .zip.

Options:
%s`, version, fs.FlagUsages())
}

// pflag.Value adapter so the ErrorPolicy enum can be used with fs.Var.

type errorPolicyValue struct{ p *ErrorPolicy }

func (e *errorPolicyValue) String() string { return string(*e.p) }
func (e *errorPolicyValue) Type() string   { return "policy" }
func (e *errorPolicyValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "mark":
		*e.p = PolicyMark
	case "keep":
		*e.p = PolicyKeep
	case "skip":
		*e.p = PolicySkip
	default:
		return fmt.Errorf("invalid policy %q (use 'mark', 'keep' or 'skip')", s)
	}
	return nil
}
