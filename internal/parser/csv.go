package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/lecturemap/internal/doctree"
)

// CSVParser handles outline spreadsheets. The first row is a header; each
// data row names a section in column 0 and an item in column 1. Rows with
// an empty section continue the previous one.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}
	if len(records) < 2 {
		return tree, nil
	}

	sections := map[string]*doctree.DocNode{}
	var current *doctree.DocNode
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			node, ok := sections[name]
			if !ok {
				node = &doctree.DocNode{Title: name, Level: 2}
				sections[name] = node
				tree.Children = append(tree.Children, node)
			}
			current = node
		}
		if current == nil || len(row) < 2 {
			continue
		}
		item := strings.TrimSpace(row[1])
		if item == "" {
			continue
		}
		if current.Text != "" {
			current.Text += "\n"
		}
		current.Text += "- " + item
	}

	return tree, nil
}
