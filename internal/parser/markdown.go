package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/lecturemap/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Paragraph and list
// source is kept verbatim so inline markers survive into the summary; code,
// raw HTML and thematic breaks are dropped.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	stack := newHeadingStack(tree.Title)
	var body blockWriter

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			body.flushInto(stack.top())
			stack.push(rawLines(node, src, " "), node.Level)
		case *ast.List:
			writeList(&body, node, src, 0)
		case *ast.Blockquote:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t := rawLines(c, src, " "); t != "" {
					body.paragraph("> " + t)
				}
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak:
		default:
			body.paragraph(rawLines(n, src, "\n"))
		}
	}
	body.flushInto(stack.top())

	tree.Children = stack.children()
	return tree, nil
}

// writeList renders a list as "- " or "N. " lines, indenting two spaces per
// nesting level.
func writeList(w *blockWriter, list *ast.List, src []byte, depth int) {
	indent := strings.Repeat("  ", depth)
	num := list.Start
	if num == 0 {
		num = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "- "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		var parts []string
		var nested []*ast.List
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, sub)
				continue
			}
			if t := rawLines(c, src, " "); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			w.listLine(indent + marker + strings.Join(parts, " "))
		}
		for _, sub := range nested {
			writeList(w, sub, src, depth+1)
		}
	}
}

// rawLines returns the trimmed source lines of a block node joined by sep.
func rawLines(n ast.Node, src []byte, sep string) string {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return ""
	}
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := bytes.TrimSpace(lines.At(i).Value(src))
		if len(line) == 0 {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(sep)
		}
		buf.Write(line)
	}
	return buf.String()
}
