package md2docx

import (
	"fmt"
	"regexp"
	"strings"
)

// Precompiled patterns for whole-text normalization.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Display math: \[ ... \], non-greedy, may span lines
	bracketDisplayMath = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)

	// Inline math: \( ... \), must stay on a single line
	parenInlineMath = regexp.MustCompile(`\\\((.*?)\\\)`)
)

// zeroWidthSpace is emitted by some LLMs and breaks pandoc's inline parsing.
const zeroWidthSpace = "​"

// prepass applies whole-text fixes before line scanning, in fixed order:
// line-ending normalization (cosmetic, not logged), zero-width-space removal,
// and LaTeX-style math delimiter rewriting. Re-running prepass on its own
// output performs no further rewrites.
func prepass(content string, log *fixLog) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")

	if strings.Contains(content, zeroWidthSpace) {
		content = strings.ReplaceAll(content, zeroWidthSpace, "")
		log.add("removed zero-width space characters")
	}

	if n := len(bracketDisplayMath.FindAllString(content, -1)); n > 0 {
		content = bracketDisplayMath.ReplaceAllStringFunc(content, func(m string) string {
			return "$$" + m[2:len(m)-2] + "$$"
		})
		log.add(fmt.Sprintf("rewrote %d \\[ \\] display math block(s) to $$ delimiters", n))
	}

	if n := len(parenInlineMath.FindAllString(content, -1)); n > 0 {
		content = parenInlineMath.ReplaceAllStringFunc(content, func(m string) string {
			return "$" + m[2:len(m)-2] + "$"
		})
		log.add(fmt.Sprintf("rewrote %d \\( \\) inline math expression(s) to $ delimiters", n))
	}

	return content
}
