package md2docx

import (
	"regexp"
	"strings"
)

// Precompiled per-line repair patterns.
var (
	headingSpacing    = regexp.MustCompile(`^(#{1,6})(\S)`)
	blockquoteSpacing = regexp.MustCompile(`^(>+)(\S)`)
	unorderedSpacing  = regexp.MustCompile(`^(\s*[-*+])(\S)`)
	orderedSpacing    = regexp.MustCompile(`^(\s*\d+\.)(\S)`)

	// Bold spans on a single line; interior padding gets trimmed.
	boldSpan = regexp.MustCompile(`\*\*([^*\n]+?)\*\*`)

	// HTML superscript tags; content may span lines and include markup.
	supTag = regexp.MustCompile(`(?s)<sup>(.*?)</sup>`)
)

// repairLine applies the prose-only repair rules to a single line. The
// spacing rule is selected by the line's kind so each line is repaired
// exactly once; the bold and inline-math trims apply to every prose line.
// Each rule is independently idempotent.
func repairLine(line string, kind lineKind, log *fixLog) string {
	switch kind {
	case kindHeading:
		line = applySpacing(line, headingSpacing, "added missing space after heading marker", log)
	case kindBlockquote:
		line = applySpacing(line, blockquoteSpacing, "added missing space after blockquote marker", log)
	case kindUnorderedItem:
		line = applySpacing(line, unorderedSpacing, "added missing space after list marker", log)
	case kindOrderedItem:
		line = applySpacing(line, orderedSpacing, "added missing space after ordered list marker", log)
	}

	if trimmed := trimBoldPadding(line); trimmed != line {
		line = trimmed
		log.add("trimmed padding inside bold markers")
	}

	if trimmed := trimInlineMathPadding(line); trimmed != line {
		line = trimmed
		log.add("trimmed padding inside inline math")
	}

	return line
}

// applySpacing inserts one space between a block marker and the text glued
// to it, logging the category once per document.
func applySpacing(line string, pattern *regexp.Regexp, category string, log *fixLog) string {
	repaired := pattern.ReplaceAllString(line, "$1 $2")
	if repaired != line {
		log.add(category)
	}
	return repaired
}

// trimBoldPadding rewrites "** text **" to "**text**" within a single line.
// Spans whose content is only whitespace are left alone.
func trimBoldPadding(line string) string {
	return boldSpan.ReplaceAllStringFunc(line, func(m string) string {
		inner := m[2 : len(m)-2]
		trimmed := strings.Trim(inner, " \t")
		if trimmed == "" {
			return m
		}
		return "**" + trimmed + "**"
	})
}

// trimInlineMathPadding strips leading and trailing whitespace inside
// single-dollar math spans on one line. Double-dollar tokens are copied
// through untouched so block math delimiters are never consumed.
func trimInlineMathPadding(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	i := 0
	for i < len(line) {
		c := line[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}

		// Block math token: pass through verbatim.
		if i+1 < len(line) && line[i+1] == '$' {
			b.WriteString("$$")
			i += 2
			continue
		}

		// Find the closing single dollar.
		j := strings.IndexByte(line[i+1:], '$')
		if j < 0 {
			b.WriteString(line[i:])
			break
		}
		end := i + 1 + j

		// A candidate closer that begins a $$ token is not a closer.
		// Leave the span alone and let the token pass through.
		if end+1 < len(line) && line[end+1] == '$' {
			b.WriteString(line[i:end])
			i = end
			continue
		}

		inner := line[i+1 : end]
		trimmed := strings.Trim(inner, " \t")
		if trimmed == "" || trimmed == inner {
			b.WriteString(line[i : end+1])
		} else {
			b.WriteByte('$')
			b.WriteString(trimmed)
			b.WriteByte('$')
		}
		i = end + 1
	}

	return b.String()
}
