package md2docx

import (
	"regexp"
	"strings"
)

// blockMathToken delimits display math blocks.
const blockMathToken = "$$"

// Runs of three or more blank lines collapse to exactly one.
var excessBlankLines = regexp.MustCompile(`\n{4,}`)

// fixLog collects one human-readable entry per repair category that fired,
// in first-fired order, without repeats.
type fixLog struct {
	entries []string
	seen    map[string]bool
}

func newFixLog() *fixLog {
	return &fixLog{seen: make(map[string]bool)}
}

func (l *fixLog) add(entry string) {
	if l.seen[entry] {
		return
	}
	l.seen[entry] = true
	l.entries = append(l.entries, entry)
}

// emittedLine is one output line plus whether it belongs to a code region
// (fence markers included). Code lines are opaque to every later pass that
// rewrites content.
type emittedLine struct {
	text   string
	inCode bool
}

// Repair turns loosely-formed Markdown, typically produced by a language
// model, into a syntactically well-formed variant the document converter
// can parse. It returns the repaired text and an ordered, de-duplicated
// list of human-readable descriptions of the repairs applied.
//
// The engine is pure and total: it holds no shared state, performs no I/O,
// and cannot fail on valid UTF-8 input. Concurrent calls are safe.
func Repair(content string) (string, []string) {
	log := newFixLog()

	content = prepass(content, log)

	out, terminal := scanLines(content, log)
	convertSuperscripts(out, log)
	out = closeDanglingFence(out, terminal, log)

	repaired := joinLines(out)
	repaired = closeDanglingMath(repaired, log)
	repaired = excessBlankLines.ReplaceAllString(repaired, "\n\n")

	return repaired, log.entries
}

// scanLines is the single traversal at the heart of the engine. It threads
// fence state across lines; fence markers toggle the state and pass through
// unmodified, and lines inside a fence are emitted byte-identical. Prose
// lines are classified once, repaired, and given separator blank lines as
// the converter's block grammar requires.
//
// Classification uses only information available at scan time: lines after
// an unterminated fence opener count as code even though the fence is
// auto-closed later, and are never retroactively reclassified.
func scanLines(content string, log *fixLog) ([]emittedLine, scanState) {
	lines := strings.Split(content, "\n")
	out := make([]emittedLine, 0, len(lines)+8)

	state := stateProse
	// A horizontal rule forces a blank line after it; the flag is satisfied
	// by an existing blank so repeated runs do not accumulate separators.
	pendingRuleBlank := false

	for _, line := range lines {
		if isFenceMarker(line) {
			if pendingRuleBlank {
				out = append(out, emittedLine{})
				pendingRuleBlank = false
			}
			if state == stateProse {
				state = stateCodeFence
			} else {
				state = stateProse
			}
			out = append(out, emittedLine{text: line, inCode: true})
			continue
		}

		if state == stateCodeFence {
			out = append(out, emittedLine{text: line, inCode: true})
			continue
		}

		if pendingRuleBlank {
			if strings.TrimSpace(line) != "" {
				out = append(out, emittedLine{})
			}
			pendingRuleBlank = false
		}

		kind := classifyLine(line)
		repaired := repairLine(line, kind, log)

		if needsBlankBefore(kind, out) {
			out = append(out, emittedLine{})
			log.add("inserted blank line before block element")
		}
		out = append(out, emittedLine{text: repaired})

		if kind == kindHorizontalRule {
			pendingRuleBlank = true
		}
	}

	if pendingRuleBlank {
		out = append(out, emittedLine{})
	}

	return out, state
}

// needsBlankBefore decides whether a separator blank line goes before the
// current line, judged against the previously emitted line. Contiguous
// blockquote lines stay joined, as do contiguous list items of the same
// class. At most one blank block is injected per line.
func needsBlankBefore(kind lineKind, out []emittedLine) bool {
	if len(out) == 0 {
		return false
	}
	prev := out[len(out)-1]
	if strings.TrimSpace(prev.text) == "" {
		return false
	}

	switch kind {
	case kindHeading, kindHorizontalRule:
		return true
	case kindBlockquote:
		return prev.inCode || classifyLine(prev.text) != kindBlockquote
	case kindUnorderedItem:
		return prev.inCode || classifyLine(prev.text) != kindUnorderedItem
	case kindOrderedItem:
		return prev.inCode || classifyLine(prev.text) != kindOrderedItem
	}
	return false
}

// convertSuperscripts rewrites <sup>content</sup> to ^content^ across runs
// of contiguous prose lines. Matching may span lines within a run but never
// reaches into code regions, preserving fence opacity.
func convertSuperscripts(out []emittedLine, log *fixLog) {
	i := 0
	for i < len(out) {
		if out[i].inCode {
			i++
			continue
		}
		j := i
		for j < len(out) && !out[j].inCode {
			j++
		}

		parts := make([]string, 0, j-i)
		for k := i; k < j; k++ {
			parts = append(parts, out[k].text)
		}
		segment := strings.Join(parts, "\n")

		if replaced := supTag.ReplaceAllString(segment, "^$1^"); replaced != segment {
			for k, text := range strings.Split(replaced, "\n") {
				out[i+k].text = text
			}
			log.add("converted <sup> tags to caret superscript syntax")
		}
		i = j
	}
}

// closeDanglingFence appends a closing fence marker, preceded by a blank
// line, when the traversal ended inside a code fence. This forces the
// terminal state back to prose.
func closeDanglingFence(out []emittedLine, terminal scanState, log *fixLog) []emittedLine {
	if terminal != stateCodeFence {
		return out
	}

	if len(out) > 0 && strings.TrimSpace(out[len(out)-1].text) != "" {
		out = append(out, emittedLine{inCode: true})
	}
	out = append(out, emittedLine{text: "```", inCode: true})
	log.add("closed unterminated code fence")
	return out
}

// closeDanglingMath balances the block-math token count. The check is
// purely textual over the whole repaired text, independent of the
// scanner's fence state.
func closeDanglingMath(text string, log *fixLog) string {
	if strings.Count(text, blockMathToken)%2 == 0 {
		return text
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text += "\n" + blockMathToken
	log.add("closed unterminated math block")
	return text
}

func joinLines(out []emittedLine) string {
	parts := make([]string, len(out))
	for i, l := range out {
		parts[i] = l.text
	}
	return strings.Join(parts, "\n")
}
