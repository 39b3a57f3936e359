package md2docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// commandRunner abstracts command execution to enable testing without real
// subprocesses.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// pandocConverter produces docx documents by invoking the pandoc CLI.
type pandocConverter struct {
	runner commandRunner
}

// newPandocConverter creates a pandocConverter with a real command runner.
func newPandocConverter() *pandocConverter {
	return &pandocConverter{runner: &execRunner{}}
}

// Convert writes a standalone docx document rendered from the repaired
// Markdown to outputPath. Conversion errors carry pandoc's raw stderr so
// the caller can surface it verbatim.
func (c *pandocConverter) Convert(ctx context.Context, markdown string, flags FormatFlags, outputPath string) error {
	tmpPath, cleanup, err := fileutil.WriteTempFile(markdown, "md")
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	args := []string{
		tmpPath,
		"-f", readerFormat(flags),
		"-t", "docx",
		"--standalone",
		"-o", outputPath,
	}

	_, stderr, err := c.runner.Run(ctx, "pandoc", args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w%s", ErrPandocNotFound, hints.ForPandocNotFound())
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %s", ErrConversionFailed, msg)
		}
		return fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	return nil
}

// readerFormat builds pandoc's reader format string from the math flags.
// Extensions are toggled explicitly in both directions so behavior does not
// depend on pandoc's defaults.
func readerFormat(flags FormatFlags) string {
	format := "markdown"
	if flags.DollarMath {
		format += "+tex_math_dollars"
	} else {
		format += "-tex_math_dollars"
	}
	if flags.BackslashMath {
		format += "+tex_math_single_backslash"
	} else {
		format += "-tex_math_single_backslash"
	}
	return format
}
