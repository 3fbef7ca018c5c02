package chunker

import (
	"regexp"
	"strings"
)

var paragraphBreak = regexp.MustCompile(`\n\n+`)

// Paragraphs splits text on runs of blank lines. Chunks are trimmed and empty
// chunks are dropped.
func Paragraphs(text string) []string {
	parts := paragraphBreak.Split(text, -1)
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Sentences splits text on periods that are not enclosed in parentheses.
// "e.g. (see fig. 2)" keeps the parenthesised period intact.
func Sentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' || insideParens(text, i+1) {
			continue
		}
		if s := strings.TrimSpace(text[start:i]); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// insideParens reports whether the next parenthesis at or after from is a
// closing one, which means the position sits inside an open group.
func insideParens(text string, from int) bool {
	for j := from; j < len(text); j++ {
		switch text[j] {
		case '(':
			return false
		case ')':
			return true
		}
	}
	return false
}

// Limit returns at most n leading elements of parts.
func Limit(parts []string, n int) []string {
	if n >= 0 && len(parts) > n {
		return parts[:n]
	}
	return parts
}
