package mindmap

import (
	"github.com/dgallion1/lecturemap/internal/chunker"
)

const (
	RootID    = "root"
	RootLabel = "Lecture Overview"
)

// Node is a hierarchy node. Depth is 0 for the root, 1 for sections and 2 for
// items; items never have children.
type Node struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Depth    int     `json:"depth"`
	Children []*Node `json:"children,omitempty"`
}

// BuildHierarchy turns a summary into a root → section → item tree. It never
// fails: empty input yields a root without children.
func BuildHierarchy(summary string) *Node {
	root := &Node{ID: RootID, Label: RootLabel}

	for _, sec := range Outline(summary) {
		sectionNode := &Node{ID: sec.ID, Label: truncate(sec.Title, MaxLabelRunes), Depth: 1}
		for i, item := range chunker.Limit(sec.Items, MaxItemsPerSection) {
			sectionNode.Children = append(sectionNode.Children, &Node{
				ID:    itemID(sec.ID, i),
				Label: truncate(item, MaxLabelRunes),
				Depth: 2,
			})
		}
		if len(sectionNode.Children) > 0 {
			root.Children = append(root.Children, sectionNode)
		}
	}

	return root
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
