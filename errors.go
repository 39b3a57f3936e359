package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrConversionFailed  = errors.New("document conversion failed")
	ErrPandocNotFound    = errors.New("pandoc executable not found")
	ErrStyleInjection    = errors.New("document style injection failed")
	ErrHTMLConversion    = errors.New("HTML conversion failed")

	// PDF backend errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
