package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/lecturemap/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Headings open sections, list items become
// bullet lines and blockquotes become "> " lines.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm"),
	}
	if title := findTitle(doc); title != "" {
		tree.Title = title
	}

	stack := newHeadingStack(tree.Title)
	var body blockWriter

	var walk func(n *html.Node, listDepth int)
	walk = func(n *html.Node, listDepth int) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				body.flushInto(stack.top())
				stack.push(textContent(n), level)
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header", "pre", "code":
				return
			case "ul", "ol":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c, listDepth+1)
				}
				return
			case "li":
				indent := strings.Repeat("  ", max(listDepth-1, 0))
				if t := ownText(n); t != "" {
					body.listLine(indent + "- " + t)
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
						walk(c, listDepth)
					}
				}
				return
			case "blockquote":
				if t := textContent(n); t != "" {
					body.paragraph("> " + t)
				}
				return
			case "p", "td":
				body.paragraph(textContent(n))
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, listDepth)
		}
	}

	if b := findBody(doc); b != nil {
		walk(b, 0)
	} else {
		walk(doc, 0)
	}
	body.flushInto(stack.top())

	tree.Children = stack.children()
	return tree, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// textContent joins all descendant text with single spaces.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// ownText is textContent without nested lists.
func ownText(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		if t := textContent(c); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
