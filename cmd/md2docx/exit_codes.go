package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Exit codes for the md2docx CLI.
// 0 = success, 1 = conversion or unexpected failure, 2 = missing input or
// usage error.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitInput   = 2
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, md2docx.ErrEmptyMarkdown) ||
		errors.Is(err, md2docx.ErrUnsupportedFormat) {
		return ExitInput
	}

	return ExitFailure
}
