package md2docx

import (
	"strings"
	"testing"
)

func TestRepairScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading spacing at start of input",
			input:    "##Title\ntext",
			expected: "## Title\ntext",
		},
		{
			name:     "blank line injected before list run",
			input:    "text\n-item1\n-item2",
			expected: "text\n\n- item1\n- item2",
		},
		{
			name:     "unterminated fence closed after blank separator",
			input:    "```python\nprint(1)",
			expected: "```python\nprint(1)\n\n```",
		},
		{
			name:     "inline math padding trimmed",
			input:    "$ x $",
			expected: "$x$",
		},
		{
			name:     "bracket display math rewritten to dollar block",
			input:    `\[a=b\]`,
			expected: "$$a=b$$",
		},
		{
			name:     "blank line injected before heading",
			input:    "para\n#Title",
			expected: "para\n\n# Title",
		},
		{
			name:     "blockquote spacing and separator",
			input:    "text\n>quote\n>more",
			expected: "text\n\n> quote\n> more",
		},
		{
			name:     "horizontal rule isolated by blank lines",
			input:    "a\n---\nb",
			expected: "a\n\n---\n\nb",
		},
		{
			name:     "ordered list spacing and separator",
			input:    "intro\n1.first\n2.second",
			expected: "intro\n\n1. first\n2. second",
		},
		{
			name:     "heading inside fence untouched",
			input:    "```\n#not a heading\n```",
			expected: "```\n#not a heading\n```",
		},
		{
			name:     "list markers inside fence untouched",
			input:    "```\n-flag\n>redirect\n```",
			expected: "```\n-flag\n>redirect\n```",
		},
		{
			name:     "sup tag converted to caret",
			input:    "x<sup>2</sup>",
			expected: "x^2^",
		},
		{
			name:     "multiline display math preserved verbatim",
			input:    "\\[\na = b\n\\]",
			expected: "$$\na = b\n$$",
		},
		{
			name:     "paren inline math on one line",
			input:    `Euler: \(e^{i\pi}+1=0\).`,
			expected: `Euler: $e^{i\pi}+1=0$.`,
		},
		{
			name:     "paren math spanning lines left alone",
			input:    "\\(a\nb\\)",
			expected: "\\(a\nb\\)",
		},
		{
			name:     "zero width space stripped",
			input:    "he\u200bllo",
			expected: "hello",
		},
		{
			name:     "bold padding trimmed",
			input:    "say ** loud ** now",
			expected: "say **loud** now",
		},
		{
			name:     "excess blank lines collapsed",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "odd block math token closed",
			input:    "$$\na=b",
			expected: "$$\na=b\n\n$$",
		},
		{
			name:     "empty input unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Repair(tt.input)
			if got != tt.expected {
				t.Errorf("Repair() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRepairFencePassthrough(t *testing.T) {
	// Bytes strictly between a matched pair of fence markers must be
	// identical in input and output.
	input := "before\n```go\n#comment\n   >weird\n1.indent\n** x **\n```\nafter"
	got, _ := Repair(input)

	want := "#comment\n   >weird\n1.indent\n** x **"
	if !strings.Contains(got, want) {
		t.Errorf("fence content was modified:\n%s", got)
	}
}

func TestRepairFenceParity(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "terminated fence", input: "```\nx\n```"},
		{name: "unterminated fence", input: "```python\nx"},
		{name: "two fences one open", input: "```\na\n```\ntext\n```js\nb"},
		{name: "no fences", input: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Repair(tt.input)
			count := 0
			for _, line := range strings.Split(got, "\n") {
				if isFenceMarker(line) {
					count++
				}
			}
			if count%2 != 0 {
				t.Errorf("odd fence marker count %d in output:\n%s", count, got)
			}
		})
	}
}

func TestRepairMathTokenParity(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "balanced block", input: "$$\na\n$$"},
		{name: "dangling opener", input: "$$\na"},
		{name: "rewritten bracket math", input: `\[a\]`},
		{name: "three tokens", input: "$$\na\n$$\n$$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Repair(tt.input)
			if strings.Count(got, "$$")%2 != 0 {
				t.Errorf("odd $$ count in output:\n%s", got)
			}
		})
	}
}

func TestRepairBlankLineInvariant(t *testing.T) {
	input := "intro\n#Head\npara\n-a\n-b\n>q\n>r\n1.x\n---\ntail"
	got, _ := Repair(input)

	lines := strings.Split(got, "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		kind := classifyLine(line)
		if kind == kindPlain {
			continue
		}
		prev := lines[i-1]
		if strings.TrimSpace(prev) == "" {
			continue
		}
		// Contiguous same-kind quote and list lines stay joined.
		if kind == classifyLine(prev) &&
			(kind == kindBlockquote || kind == kindUnorderedItem || kind == kindOrderedItem) {
			continue
		}
		t.Errorf("line %d %q not preceded by blank line:\n%s", i, line, got)
	}
}

func TestRepairIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "mixed document", input: "intro\n#Head\n-a\n-b\n>q\n1.x\n---\ntail\n$ y $\n** b **"},
		{name: "unterminated fence", input: "```python\nprint(1)"},
		{name: "math normalization", input: "\\[a\\] and \\(b\\) and $$\nc"},
		{name: "horizontal rule", input: "a\n---\nb"},
		{name: "sup tags", input: "x<sup>2</sup> y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once, _ := Repair(tt.input)
			twice, fixes := Repair(once)
			if twice != once {
				t.Errorf("second run changed text:\nfirst:  %q\nsecond: %q", once, twice)
			}
			if len(fixes) != 0 {
				t.Errorf("second run logged fixes: %v", fixes)
			}
		})
	}
}

func TestRepairFixLog(t *testing.T) {
	t.Run("one entry per category", func(t *testing.T) {
		_, fixes := Repair("#a\ntext\n#b\nmore\n#c")
		count := 0
		for _, fix := range fixes {
			if fix == "added missing space after heading marker" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("heading category logged %d times, want 1: %v", count, fixes)
		}
	})

	t.Run("no fixes for clean input", func(t *testing.T) {
		_, fixes := Repair("# Title\n\nA paragraph.\n\n- item\n- item")
		if len(fixes) != 0 {
			t.Errorf("clean input logged fixes: %v", fixes)
		}
	})

	t.Run("categories appear in firing order", func(t *testing.T) {
		_, fixes := Repair("\u200bx\n#h")
		if len(fixes) < 2 {
			t.Fatalf("expected at least 2 fixes, got %v", fixes)
		}
		if fixes[0] != "removed zero-width space characters" {
			t.Errorf("pre-pass fix not first: %v", fixes)
		}
	})
}

func TestRepairUnterminatedFenceProtectsContent(t *testing.T) {
	// Lines after an unterminated opener count as code at scan time and
	// must not be repaired even though the fence is auto-closed later.
	got, _ := Repair("```\n#not a heading\n-not a list")
	if !strings.Contains(got, "#not a heading") || !strings.Contains(got, "-not a list") {
		t.Errorf("content after unterminated fence was repaired:\n%s", got)
	}
	if !strings.HasSuffix(got, "```") {
		t.Errorf("missing closing fence:\n%s", got)
	}
}

func TestRepairQuoteListTransition(t *testing.T) {
	got, _ := Repair("> quote\n- item")
	want := "> quote\n\n- item"
	if got != want {
		t.Errorf("Repair() = %q, want %q", got, want)
	}
}

func TestRepairListClassSwitch(t *testing.T) {
	// Unordered and ordered lists are independent classes; switching
	// between them inserts a separator.
	got, _ := Repair("- a\n1. b")
	want := "- a\n\n1. b"
	if got != want {
		t.Errorf("Repair() = %q, want %q", got, want)
	}
}

func TestRepairSupAcrossLines(t *testing.T) {
	got, _ := Repair("x<sup>a\nb</sup>y")
	want := "x^a\nb^y"
	if got != want {
		t.Errorf("Repair() = %q, want %q", got, want)
	}
}

func TestRepairSupInsideFenceUntouched(t *testing.T) {
	input := "```\n<sup>2</sup>\n```"
	got, _ := Repair(input)
	if got != input {
		t.Errorf("Repair() = %q, want %q", got, input)
	}
}

func TestFixLogDeduplicates(t *testing.T) {
	log := newFixLog()
	log.add("a")
	log.add("b")
	log.add("a")

	if len(log.entries) != 2 {
		t.Fatalf("entries = %v, want [a b]", log.entries)
	}
	if log.entries[0] != "a" || log.entries[1] != "b" {
		t.Errorf("entries = %v, want [a b]", log.entries)
	}
}
