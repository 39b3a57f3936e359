// Package md2docx repairs loosely-formed Markdown, typically produced by
// language models, and converts it into Word-style documents.
//
// # Quick Start
//
// Create a service, convert markdown, and close when done:
//
//	svc := md2docx.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, md2docx.Input{
//	    Markdown: "##Hello\n-world",
//	    Flags:    md2docx.DefaultFormatFlags(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.Document, 0644)
//
// The result contains the document bytes, a suggested filename derived from
// the content, and the list of repairs that were applied.
//
// # Conversion Pipeline
//
//  1. Markdown repair: a fence-aware line scan fixes marker spacing,
//     normalizes LaTeX-style math delimiters to dollar tokens, inserts the
//     blank-line separators the converter's block grammar requires, and
//     balances unterminated fences and math blocks. Use Repair directly for
//     the text transform alone.
//  2. Document rendering: pandoc for docx (requires pandoc on PATH),
//     goldmark for HTML, headless Chrome via go-rod for PDF.
//  3. Style enhancement (docx only): code-block and blockquote paragraph
//     styles are rewritten inside the generated document. Failures here
//     never invalidate the document.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2docx.New(
//	    md2docx.WithTimeout(2 * time.Minute),
//	    md2docx.WithStyling(false),
//	)
//
// # Browser Requirements
//
// PDF output requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. For containers and
// CI environments, set ROD_NO_SANDBOX=1 to disable the Chrome sandbox and
// ROD_BROWSER_BIN to specify a custom Chrome binary.
package md2docx
