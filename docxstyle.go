package md2docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// docxStyler mutates paragraph styles inside a generated docx in place.
type docxStyler interface {
	EnhanceStyles(path string) error
}

// Compile-time interface check
var _ docxStyler = (*zipDocxStyler)(nil)

// stylesEntry is the styles part inside the docx package.
const stylesEntry = "word/styles.xml"

// Paragraph style definitions keyed by the style IDs pandoc's docx writer
// assigns: "SourceCode" for fenced code blocks, "BlockText" for blockquotes.
// Code blocks get a fixed-width font at a fixed point size on a shaded
// background with a thin border on all sides; blockquotes get a muted,
// non-italic font with a left indent and a left border rule.
const (
	sourceCodeStyleXML = `<w:style w:type="paragraph" w:customStyle="1" w:styleId="SourceCode">` +
		`<w:name w:val="Source Code"/>` +
		`<w:basedOn w:val="Normal"/>` +
		`<w:pPr>` +
		`<w:shd w:val="clear" w:color="auto" w:fill="F5F5F5"/>` +
		`<w:pBdr>` +
		`<w:top w:val="single" w:sz="4" w:space="4" w:color="DDDDDD"/>` +
		`<w:left w:val="single" w:sz="4" w:space="4" w:color="DDDDDD"/>` +
		`<w:bottom w:val="single" w:sz="4" w:space="4" w:color="DDDDDD"/>` +
		`<w:right w:val="single" w:sz="4" w:space="4" w:color="DDDDDD"/>` +
		`</w:pBdr>` +
		`<w:spacing w:before="120" w:after="120"/>` +
		`</w:pPr>` +
		`<w:rPr>` +
		`<w:rFonts w:ascii="Consolas" w:hAnsi="Consolas" w:cs="Consolas"/>` +
		`<w:sz w:val="18"/>` +
		`<w:szCs w:val="18"/>` +
		`</w:rPr>` +
		`</w:style>`

	blockTextStyleXML = `<w:style w:type="paragraph" w:customStyle="1" w:styleId="BlockText">` +
		`<w:name w:val="Block Text"/>` +
		`<w:basedOn w:val="Normal"/>` +
		`<w:pPr>` +
		`<w:pBdr>` +
		`<w:left w:val="single" w:sz="12" w:space="8" w:color="CCCCCC"/>` +
		`</w:pBdr>` +
		`<w:ind w:left="480"/>` +
		`</w:pPr>` +
		`<w:rPr>` +
		`<w:i w:val="0"/>` +
		`<w:iCs w:val="0"/>` +
		`<w:color w:val="666666"/>` +
		`</w:rPr>` +
		`</w:style>`
)

// zipDocxStyler rewrites word/styles.xml inside the docx package. A docx
// file is a zip archive of XML parts; the edit is a bounded splice of two
// style elements, so no OOXML library is required.
type zipDocxStyler struct{}

// EnhanceStyles replaces the code-block and blockquote paragraph styles in
// the document at path. The file is rewritten in place; on any failure the
// original document is left untouched.
func (s *zipDocxStyler) EnhanceStyles(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is our own temp output
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStyleInjection, err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStyleInjection, err)
	}

	var out bytes.Buffer
	writer := zip.NewWriter(&out)
	found := false

	for _, file := range reader.File {
		content, err := readZipEntry(file)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStyleInjection, file.Name, err)
		}

		if file.Name == stylesEntry {
			content = injectStyles(content)
			found = true
		}

		w, err := writer.CreateHeader(&zip.FileHeader{
			Name:   file.Name,
			Method: file.Method,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStyleInjection, err)
		}
		if _, err := w.Write(content); err != nil {
			return fmt.Errorf("%w: %v", ErrStyleInjection, err)
		}
	}

	if !found {
		return fmt.Errorf("%w: %s not present", ErrStyleInjection, stylesEntry)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStyleInjection, err)
	}

	if err := os.WriteFile(path, out.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrStyleInjection, err)
	}
	return nil
}

func readZipEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// injectStyles replaces the existing SourceCode and BlockText style
// elements, or appends them before the closing tag when absent.
func injectStyles(stylesXML []byte) []byte {
	content := string(stylesXML)
	content = upsertStyle(content, "SourceCode", sourceCodeStyleXML)
	content = upsertStyle(content, "BlockText", blockTextStyleXML)
	return []byte(content)
}

func upsertStyle(content, styleID, styleXML string) string {
	pattern := regexp.MustCompile(`(?s)<w:style [^>]*w:styleId="` + styleID + `".*?</w:style>`)
	if pattern.MatchString(content) {
		return pattern.ReplaceAllLiteralString(content, styleXML)
	}
	if idx := strings.LastIndex(content, "</w:styles>"); idx != -1 {
		return content[:idx] + styleXML + content[idx:]
	}
	return content
}
