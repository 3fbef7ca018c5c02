package mermaid

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLabelRunes caps diagram labels.
	MaxLabelRunes = 30
	maxIDLength   = 20
)

var (
	idDisallowed    = regexp.MustCompile(`[^a-z0-9\s-]`)
	idSpaces        = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`--+`)
	emitDisallowed  = regexp.MustCompile(`[^a-z0-9-]`)
	labelMarkup     = regexp.MustCompile("[*`_~\"'<>{}\\[\\]():;]")
	labelLineBreaks = regexp.MustCompile(`[\r\n]+`)
)

// sanitizeID reduces text to lowercase alphanumerics joined by single
// hyphens. Text that leaves nothing behind falls back to n<counter>.
func sanitizeID(text string, counter int) string {
	id := strings.ToLower(text)
	id = idDisallowed.ReplaceAllString(id, "")
	id = idSpaces.ReplaceAllString(id, "-")
	id = hyphenRuns.ReplaceAllString(id, "-")
	id = strings.Trim(id, "-")
	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	if id == "" {
		return fmt.Sprintf("n%d", counter)
	}
	return id
}

// uniqueID appends the counter to a sanitized base without doubling a
// trailing hyphen.
func uniqueID(label string, counter int) string {
	base := sanitizeID(label, counter)
	if strings.HasSuffix(base, "-") {
		return fmt.Sprintf("%s%d", base, counter)
	}
	return fmt.Sprintf("%s-%d", base, counter)
}

// cleanID re-checks an id at emission time. The result may be empty.
func cleanID(id string) string {
	id = emitDisallowed.ReplaceAllString(id, "")
	id = hyphenRuns.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}

// sanitizeLabel strips Markdown emphasis, quotes, brackets and separators
// that break node declarations. The result may be empty.
func sanitizeLabel(text string) string {
	cleaned := labelMarkup.ReplaceAllString(text, "")
	cleaned = labelLineBreaks.ReplaceAllString(cleaned, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = hyphenRuns.ReplaceAllString(cleaned, "-")
	cleaned = strings.TrimSpace(strings.Trim(cleaned, "-"))
	if utf8.RuneCountInString(cleaned) > MaxLabelRunes {
		cleaned = strings.TrimSpace(string([]rune(cleaned)[:MaxLabelRunes-1]))
	}
	return cleaned
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
