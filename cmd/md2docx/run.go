package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input file specified")
	ErrInputNotFound = errors.New("input file not found")
	ErrUsage         = errors.New("invalid arguments")
	ErrWriteOutput   = errors.New("failed to write output file")
)

// run executes the repair command: read the input file, repair and convert
// it, write the resulting document.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return nil
	}

	if len(positional) == 0 {
		return fmt.Errorf("%w\nusage: md2docx <input.md> [--format docx] [--out output-file]", ErrNoInput)
	}
	inputPath := positional[0]

	content, err := readInput(inputPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths()))
		}
		return err
	}

	if flags.dryRun {
		return runDryRun(content, flags, env)
	}

	format := cfg.Format
	if flags.changed("format") {
		format = flags.format
	}

	timeout, err := cfg.ParseTimeout()
	if err != nil {
		return err
	}
	if flags.timeout > 0 {
		timeout = flags.timeout
	}

	mathFlags := md2docx.FormatFlags{
		DollarMath:    cfg.Math.Dollar,
		BackslashMath: cfg.Math.Backslash,
	}
	if flags.changed("dollar-math") {
		mathFlags.DollarMath = flags.dollarMath
	}
	if flags.changed("backslash-math") {
		mathFlags.BackslashMath = flags.backslashMath
	}

	warnf := func(format string, args ...any) {
		if !flags.quiet {
			fmt.Fprintf(env.Stderr, "warning: "+format+"\n", args...)
		}
	}

	svc := md2docx.New(
		md2docx.WithTimeout(timeout),
		md2docx.WithStyling(cfg.Style.Enabled && !flags.noStyle),
		md2docx.WithWarningHandler(warnf),
	)
	defer func() { _ = svc.Close() }()

	started := env.Now()
	result, err := svc.Convert(context.Background(), md2docx.Input{
		Markdown: content,
		Format:   format,
		Flags:    mathFlags,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w%s", err, hints.ForTimeout())
		}
		return err
	}

	outputPath := resolveOutputPath(flags.out, cfg.Output.Dir, inputPath, result.Filename)
	if err := os.WriteFile(outputPath, result.Document, 0o644); err != nil { // #nosec G306 -- user-facing document
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.verbose {
		printFixes(env.Stderr, result.Fixes)
		fmt.Fprintf(env.Stderr, "Conversion took %s\n", env.Now().Sub(started).Round(time.Millisecond))
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d repairs applied)\n", outputPath, len(result.Fixes))
	}
	return nil
}

// runDryRun prints the repaired Markdown to stdout without converting.
func runDryRun(content string, flags *cliFlags, env *Environment) error {
	repaired, fixes := md2docx.Repair(content)
	fmt.Fprint(env.Stdout, repaired)
	if !flags.quiet {
		printFixes(env.Stderr, fixes)
	}
	return nil
}

func printFixes(w io.Writer, fixes []string) {
	if len(fixes) == 0 {
		fmt.Fprintln(w, "No repairs needed")
		return
	}
	fmt.Fprintln(w, "Repairs applied:")
	for _, fix := range fixes {
		fmt.Fprintf(w, "  - %s\n", fix)
	}
}

// readInput reads the Markdown input file. A missing file is a distinct
// error class so the CLI can exit with code 2.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own argument
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// resolveOutputPath picks the output location: the explicit --out flag, or
// the derived filename placed in the configured output directory, falling
// back to the input file's directory.
func resolveOutputPath(explicit, configDir, inputPath, derived string) string {
	if explicit != "" {
		return explicit
	}
	dir := configDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, derived)
}
