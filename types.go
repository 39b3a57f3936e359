package md2docx

import (
	"strings"
	"time"
)

// Output format constants.
const (
	FormatDocx = "docx"
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// FormatFlags configures which math syntaxes the converter parses. The
// service passes them through to the converter verbatim.
type FormatFlags struct {
	DollarMath    bool // enable $…$ and $$…$$ parsing
	BackslashMath bool // enable \(…\) and \[…\] parsing
}

// DefaultFormatFlags enables both math syntaxes, matching the repair
// engine's output which normalizes everything to dollar delimiters.
func DefaultFormatFlags() FormatFlags {
	return FormatFlags{DollarMath: true, BackslashMath: true}
}

// Input contains conversion parameters.
type Input struct {
	Markdown string      // Markdown content (required)
	Format   string      // "docx" (default), "html", "pdf"
	Flags    FormatFlags // math parsing flags, passed through to the converter
}

// Result holds the produced document and the repair diagnostics.
type Result struct {
	Document []byte   // the generated binary document
	Fixes    []string // ordered, de-duplicated repair log
	Filename string   // suggested output filename derived from the content
}

// normalizedFormat returns the effective output format, defaulting to docx.
func (in Input) normalizedFormat() string {
	if in.Format == "" {
		return FormatDocx
	}
	return strings.ToLower(in.Format)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	styling bool
	warnf   func(format string, args ...any)
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2docx: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithStyling toggles post-generation document style enhancement
// (code block and blockquote paragraph styles). Enabled by default.
func WithStyling(enabled bool) Option {
	return func(s *Service) {
		s.cfg.styling = enabled
	}
}

// WithWarningHandler installs a handler for non-fatal pipeline warnings
// (style enhancement failures, temp file cleanup failures). The default
// handler discards them.
func WithWarningHandler(warnf func(format string, args ...any)) Option {
	return func(s *Service) {
		if warnf != nil {
			s.cfg.warnf = warnf
		}
	}
}
