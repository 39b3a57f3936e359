package md2docx

import "regexp"

// scanState tracks whether the line scanner is inside a fenced code block.
// It is a value threaded through a single traversal, never package state,
// so concurrent Repair calls cannot interfere.
type scanState int

const (
	stateProse scanState = iota
	stateCodeFence
)

// lineKind classifies a line encountered while in prose state.
type lineKind int

const (
	kindPlain lineKind = iota
	kindHeading
	kindBlockquote
	kindUnorderedItem
	kindOrderedItem
	kindHorizontalRule
)

// Precompiled classification patterns.
var (
	// Three or more backticks after optional leading whitespace; the rest of
	// the line is an info string.
	fenceMarkerPattern = regexp.MustCompile("^\\s*`{3,}")

	headingPattern    = regexp.MustCompile(`^#{1,6}`)
	blockquotePattern = regexp.MustCompile(`^>+`)

	// A full line of three or more identical rule characters, optionally
	// space-separated ("---", "***", "- - -"). One alternative per rule
	// character; RE2 has no backreferences.
	horizontalRulePattern = regexp.MustCompile(`^\s*(-(\s*-){2,}|\*(\s*\*){2,}|_(\s*_){2,})\s*$`)

	// Well-formed list markers, and markers missing their space. The tight
	// form excludes a second marker character so that "---" and "**bold**"
	// are never read as list items.
	unorderedItemPattern      = regexp.MustCompile(`^\s*[-*+](\s|$)`)
	unorderedItemTightPattern = regexp.MustCompile(`^\s*[-*+][^\s*+-]`)
	orderedItemPattern        = regexp.MustCompile(`^\s*\d+\.`)
)

// isFenceMarker reports whether the line opens or closes a code fence.
func isFenceMarker(line string) bool {
	return fenceMarkerPattern.MatchString(line)
}

// classifyLine assigns exactly one kind to a prose line. First match wins:
// blockquote, horizontal rule, unordered item, ordered item, heading, plain.
// Horizontal rule is checked before the list kinds because a pure marker run
// like "---" matches both and must never be repaired as a list item.
func classifyLine(line string) lineKind {
	switch {
	case blockquotePattern.MatchString(line):
		return kindBlockquote
	case horizontalRulePattern.MatchString(line):
		return kindHorizontalRule
	case unorderedItemPattern.MatchString(line), unorderedItemTightPattern.MatchString(line):
		return kindUnorderedItem
	case orderedItemPattern.MatchString(line):
		return kindOrderedItem
	case headingPattern.MatchString(line):
		return kindHeading
	default:
		return kindPlain
	}
}
