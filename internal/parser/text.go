package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/lecturemap/internal/doctree"
)

var (
	textGlyphItem    = regexp.MustCompile(`^[-*•●◦▪–—]\s+(.+)$`)
	textNumberedItem = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	textUnderline    = regexp.MustCompile(`^(={3,}|-{3,})$`)
)

// TextParser handles plain text notes. Blank lines separate blocks, bullet,
// numbered and indented lines become "- " or "N. " list items, and a line
// underlined with "===" or "---" opens a level 1 or level 2 section.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	stack := newHeadingStack(tree.Title)
	var body blockWriter
	var prose []string
	flushProse := func() {
		if len(prose) > 0 {
			body.paragraph(strings.Join(prose, "\n"))
			prose = prose[:0]
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flushProse()
			continue
		}

		item, isItem := textListItem(line)
		if !isItem && len(prose) == 0 && i+1 < len(lines) && !textUnderline.MatchString(trimmed) {
			if m := textUnderline.FindStringSubmatch(strings.TrimSpace(lines[i+1])); m != nil {
				level := 2
				if m[1][0] == '=' {
					level = 1
				}
				body.flushInto(stack.top())
				stack.push(trimmed, level)
				i++
				continue
			}
		}

		if textUnderline.MatchString(trimmed) {
			// A rule on its own line.
			flushProse()
			continue
		}

		if isItem {
			flushProse()
			body.listLine(item)
			continue
		}
		prose = append(prose, trimmed)
	}
	flushProse()
	body.flushInto(stack.top())

	tree.Children = stack.children()
	return tree, nil
}

// textListItem rewrites a list-like line in the "- " or "N. " form, two
// spaces of indent per nesting level. Indented lines without a marker are
// items one level shallower than their indent suggests.
func textListItem(line string) (string, bool) {
	width := indentWidth(line)
	trimmed := strings.TrimSpace(line)
	depth := width / 2

	var item string
	switch {
	case textGlyphItem.MatchString(trimmed):
		item = "- " + textGlyphItem.FindStringSubmatch(trimmed)[1]
	case textNumberedItem.MatchString(trimmed):
		m := textNumberedItem.FindStringSubmatch(trimmed)
		item = fmt.Sprintf("%s. %s", m[1], m[2])
	case width >= 2:
		item = "- " + trimmed
		depth--
	default:
		return "", false
	}
	return strings.Repeat("  ", depth) + item, true
}

func indentWidth(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 2
		default:
			return n
		}
	}
	return n
}
