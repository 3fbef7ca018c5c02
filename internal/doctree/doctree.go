package doctree

import "strings"

// DocTree is the root of a parsed lecture document.
type DocTree struct {
	Title    string     // Document title (from metadata or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading (empty for untitled text)
	Level    int        // Heading level 1-6; 0 means one below the parent
	Text     string     // Markdown-style body: prose lines, "- " bullets, "> " quotes
	Page     int        // Source page (0 if N/A)
	Children []*DocNode // Subsections
}

// Markdown renders the tree as a summary: headings become "#" runs and
// blocks are separated by blank lines. The document title is not rendered.
func (t *DocTree) Markdown() string {
	if t == nil {
		return ""
	}
	var blocks []string
	var walk func(nodes []*DocNode, depth int)
	walk = func(nodes []*DocNode, depth int) {
		for _, n := range nodes {
			level := n.Level
			if level <= 0 {
				level = depth
			}
			if title := strings.TrimSpace(n.Title); title != "" {
				blocks = append(blocks, strings.Repeat("#", min(level, 6))+" "+title)
			}
			if text := strings.TrimSpace(n.Text); text != "" {
				blocks = append(blocks, text)
			}
			walk(n.Children, level+1)
		}
	}
	walk(t.Children, 1)
	return strings.Join(blocks, "\n\n")
}
