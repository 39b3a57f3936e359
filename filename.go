package md2docx

import (
	"regexp"
	"strings"
)

// fallbackBasename is used when the document yields no usable title.
const fallbackBasename = "document"

// maxBasenameLength bounds the derived name, in runes.
const maxBasenameLength = 40

var (
	h1Heading = regexp.MustCompile(`^#\s+(.+)$`)
	h2Heading = regexp.MustCompile(`^##\s+(.+)$`)

	// Characters that are illegal or unsafe in filenames across platforms.
	illegalFilenameChars = regexp.MustCompile(`[\x00-\x1f/\\:*?"<>|]`)
)

// DeriveFilename suggests an output filename for repaired Markdown: the
// first level-1 heading, else the first level-2 heading, else the first
// non-blank line, else a fixed fallback. Emphasis markers and characters
// illegal in filenames are stripped and the result is truncated before the
// extension is appended. Headings inside code fences are ignored.
func DeriveFilename(repaired, extension string) string {
	base := deriveBasename(repaired)
	base = sanitizeBasename(base)
	if base == "" {
		base = fallbackBasename
	}
	return base + "." + strings.TrimPrefix(extension, ".")
}

func deriveBasename(content string) string {
	lines := strings.Split(content, "\n")

	var h2, firstNonBlank string
	state := stateProse
	for _, line := range lines {
		if isFenceMarker(line) {
			if state == stateProse {
				state = stateCodeFence
			} else {
				state = stateProse
			}
			continue
		}
		if state == stateCodeFence {
			continue
		}

		if m := h1Heading.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		if h2 == "" {
			if m := h2Heading.FindStringSubmatch(line); m != nil {
				h2 = m[1]
			}
		}
		if firstNonBlank == "" && strings.TrimSpace(line) != "" {
			firstNonBlank = line
		}
	}

	if h2 != "" {
		return h2
	}
	return firstNonBlank
}

// sanitizeBasename strips emphasis markers and filesystem-illegal
// characters, then truncates to the maximum length.
func sanitizeBasename(name string) string {
	name = strings.NewReplacer("*", "", "_", "", "`", "", "~", "").Replace(name)
	name = illegalFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	name = strings.Trim(name, ".")

	runes := []rune(name)
	if len(runes) > maxBasenameLength {
		name = strings.TrimSpace(string(runes[:maxBasenameLength]))
	}
	return name
}
