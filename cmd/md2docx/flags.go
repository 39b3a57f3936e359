package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the repair command.
type cliFlags struct {
	out           string
	format        string
	config        string
	timeout       time.Duration
	dryRun        bool
	noStyle       bool
	dollarMath    bool
	backslashMath bool
	quiet         bool
	verbose       bool
	version       bool

	fs *flag.FlagSet
}

// changed reports whether the named flag was set explicitly, so config file
// values are only overridden by flags the user actually passed.
func (f *cliFlags) changed(name string) bool {
	return f.fs.Changed(name)
}

// parseFlags parses command-line arguments. args includes the program name.
// Returns the flags and the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	f.fs = fs

	fs.StringVarP(&f.out, "out", "o", "", "output file path (\"\" = derived from content)")
	fs.StringVarP(&f.format, "format", "f", "docx", "output format: docx, html, pdf")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.DurationVar(&f.timeout, "timeout", 0, "conversion timeout (0 = config default)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print repaired markdown, skip conversion")
	fs.BoolVar(&f.noStyle, "no-style", false, "skip docx style enhancement")
	fs.BoolVar(&f.dollarMath, "dollar-math", true, "enable $…$ and $$…$$ math parsing")
	fs.BoolVar(&f.backslashMath, "backslash-math", true, "enable \\(…\\) and \\[…\\] math parsing")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show repair log and timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

const usageText = `md2docx repairs loosely-formed Markdown and converts it to a document.

Usage:
  md2docx <input.md> [flags]
  md2docx doctor [--json]

Flags:
`
