package mindmap

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emphasisMarks  = regexp.MustCompile("[*`_]")
	trailingColons = regexp.MustCompile(`:+$`)

	bulletGlyphs   = regexp.MustCompile(`^[-*•●◦▪–—]+\s*`)
	numberedMarker = regexp.MustCompile(`^\d+[.)]\s*`)
	quoteMarker    = regexp.MustCompile(`^>\s*`)

	hashHeading  = regexp.MustCompile(`^#+\s*(.+)$`)
	boldHeading  = regexp.MustCompile(`^\*\*([^*]+)\*\*:?\s*(.*)$`)
	colonHeading = regexp.MustCompile(`^([A-Za-z][^:]{2,59}):\s*(.*)$`)
)

// normalise lowercases text and strips Markdown emphasis and trailing colons
// so headings and hints compare on content only.
func normalise(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = emphasisMarks.ReplaceAllString(value, "")
	value = trailingColons.ReplaceAllString(value, "")
	return strings.TrimSpace(value)
}

func containsNormalised(haystack, needle string) bool {
	needle = normalise(needle)
	return needle != "" && strings.Contains(haystack, needle)
}

// stripBullet removes a leading bullet glyph run, list number or quote marker.
func stripBullet(line string) string {
	line = bulletGlyphs.ReplaceAllString(line, "")
	line = numberedMarker.ReplaceAllString(line, "")
	line = quoteMarker.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// bulletText returns the item text of a list-like line. Lines qualify when
// they carry a bullet glyph, a list number or a quote marker, or are indented.
func bulletText(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	marked := bulletGlyphs.MatchString(trimmed) ||
		numberedMarker.MatchString(trimmed) ||
		quoteMarker.MatchString(trimmed)
	if !marked && !indented(raw) {
		return "", false
	}
	text := stripBullet(trimmed)
	return text, text != ""
}

func indented(raw string) bool {
	return strings.HasPrefix(raw, "  ") || strings.HasPrefix(raw, "\t")
}

type heading struct {
	title     string
	remainder string
}

// splitHeading recognises, in priority order, "# Title", "**Title**: rest"
// and "Title: rest" lines. A title with nothing left once emphasis marks and
// whitespace are stripped does not make a heading.
func splitHeading(line string) (heading, bool) {
	if m := hashHeading.FindStringSubmatch(line); m != nil && hasContent(m[1]) {
		return heading{title: strings.TrimSpace(m[1])}, true
	}
	if m := boldHeading.FindStringSubmatch(line); m != nil && hasContent(m[1]) {
		return heading{title: strings.TrimSpace(m[1]), remainder: strings.TrimSpace(m[2])}, true
	}
	if m := colonHeading.FindStringSubmatch(line); m != nil && hasContent(m[1]) {
		return heading{title: strings.TrimSpace(m[1]), remainder: strings.TrimSpace(m[2])}, true
	}
	return heading{}, false
}

func hasContent(title string) bool {
	return normalise(title) != ""
}

// truncate collapses whitespace and cuts text to limit runes, marking the
// cut with an ellipsis.
func truncate(text string, limit int) string {
	clean := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(clean) <= limit {
		return clean
	}
	runes := []rune(clean)
	return string(runes[:limit-1]) + "…"
}

// slugify keeps letters and digits of any script and joins runs of anything
// else with single hyphens.
func slugify(value string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
