package parser

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/lecturemap/internal/doctree"
)

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// Options carries format-specific switches.
type Options struct {
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Summary parses data with the parser for filename and renders the result as
// a Markdown summary. It also returns the document title.
func Summary(filename string, data []byte, opts Options) (summary, title string, err error) {
	p, err := ForFile(filename, opts)
	if err != nil {
		return "", "", err
	}
	tree, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return "", "", err
	}
	return tree.Markdown(), tree.Title, nil
}

// blockWriter accumulates a node body. Paragraph blocks are separated by a
// blank line, list lines by a single newline.
type blockWriter struct {
	buf      strings.Builder
	lastList bool
}

func (w *blockWriter) paragraph(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if w.buf.Len() > 0 {
		w.buf.WriteString("\n\n")
	}
	w.buf.WriteString(text)
	w.lastList = false
}

func (w *blockWriter) listLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if w.buf.Len() > 0 {
		if w.lastList {
			w.buf.WriteString("\n")
		} else {
			w.buf.WriteString("\n\n")
		}
	}
	w.buf.WriteString(line)
	w.lastList = true
}

func (w *blockWriter) flushInto(node *doctree.DocNode) {
	t := strings.TrimSpace(w.buf.String())
	if t != "" {
		if node.Text != "" {
			node.Text += "\n\n" + t
		} else {
			node.Text = t
		}
	}
	w.buf.Reset()
	w.lastList = false
}

// headingStack tracks the open sections while a parser walks a document.
type headingStack struct {
	root    *doctree.DocNode
	entries []stackEntry
}

type stackEntry struct {
	node  *doctree.DocNode
	level int
}

func newHeadingStack(title string) *headingStack {
	root := &doctree.DocNode{Title: title}
	return &headingStack{root: root, entries: []stackEntry{{node: root, level: 0}}}
}

func (s *headingStack) top() *doctree.DocNode {
	return s.entries[len(s.entries)-1].node
}

// push pops until the top has a lower level, then opens a new section.
func (s *headingStack) push(title string, level int) {
	newNode := &doctree.DocNode{Title: title, Level: level}
	for len(s.entries) > 1 && s.entries[len(s.entries)-1].level >= level {
		s.entries = s.entries[:len(s.entries)-1]
	}
	parent := s.top()
	parent.Children = append(parent.Children, newNode)
	s.entries = append(s.entries, stackEntry{node: newNode, level: level})
}

// children returns the parsed sections. Text that precedes the first heading
// becomes a leading untitled node.
func (s *headingStack) children() []*doctree.DocNode {
	if s.root.Text == "" {
		return s.root.Children
	}
	lead := &doctree.DocNode{Text: s.root.Text}
	return append([]*doctree.DocNode{lead}, s.root.Children...)
}
