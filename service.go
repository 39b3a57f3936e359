package md2docx

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// documentConverter renders repaired Markdown into a document file at
// outputPath. Implementations pass the format flags through verbatim.
type documentConverter interface {
	Convert(ctx context.Context, markdown string, flags FormatFlags, outputPath string) error
}

// Compile-time interface checks
var (
	_ documentConverter = (*pandocConverter)(nil)
	_ documentConverter = (*goldmarkConverter)(nil)
	_ documentConverter = (*rodConverter)(nil)
)

// Service orchestrates the repair-convert-style pipeline.
type Service struct {
	cfg        serviceConfig
	repair     func(string) (string, []string)
	converters map[string]documentConverter
	styler     docxStyler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyling).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			styling: true,
			warnf:   func(string, ...any) {},
		},
		repair: Repair,
		styler: &zipDocxStyler{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Converters not injected by tests get production backends. The rod
	// converter connects to Chrome lazily, so registering it is free.
	if s.converters == nil {
		s.converters = map[string]documentConverter{
			FormatDocx: newPandocConverter(),
			FormatHTML: newGoldmarkConverter(),
			FormatPDF:  newRodConverter(s.cfg.timeout),
		}
	}

	return s
}

// Convert repairs the Markdown, renders it with the backend for the
// requested format, and returns the document bytes together with the repair
// log. Style enhancement and temp-file cleanup failures are reported to the
// warning handler and never fail the conversion.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	format := input.normalizedFormat()
	converter, ok := s.converters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, input.Format)
	}

	repaired, fixes := s.repair(input.Markdown)

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	outputPath, cleanup, err := fileutil.TempOutputPath(format)
	if err != nil {
		return nil, err
	}
	defer func() {
		if removeErr := cleanup(); removeErr != nil && !os.IsNotExist(removeErr) {
			s.cfg.warnf("failed to remove temp file %s: %v", outputPath, removeErr)
		}
	}()

	if err := converter.Convert(ctx, repaired, input.Flags, outputPath); err != nil {
		return nil, err
	}

	if format == FormatDocx && s.cfg.styling && s.styler != nil {
		if styleErr := s.styler.EnhanceStyles(outputPath); styleErr != nil {
			// The unstyled document is still valid; keep it.
			s.cfg.warnf("style enhancement skipped: %v", styleErr)
		}
	}

	document, err := os.ReadFile(outputPath) // #nosec G304 -- our own temp path
	if err != nil {
		return nil, fmt.Errorf("%w: reading output: %v", ErrConversionFailed, err)
	}

	return &Result{
		Document: document,
		Fixes:    fixes,
		Filename: DeriveFilename(repaired, format),
	}, nil
}

// Close releases resources held by converter backends (the headless
// browser, if the PDF backend was used).
func (s *Service) Close() error {
	if c, ok := s.converters[FormatPDF].(*rodConverter); ok {
		return c.Close()
	}
	return nil
}
