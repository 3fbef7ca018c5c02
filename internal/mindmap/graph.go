package mindmap

import (
	"fmt"
	"strings"
)

const (
	// MaxGraphNodes caps the flattened graph.
	MaxGraphNodes = 60

	SpacingX = 280
	SpacingY = 140
)

// Graph is the positioned node/edge view consumed by the interactive renderer.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type GraphNode struct {
	ID         string    `json:"id"`
	Data       NodeData  `json:"data"`
	Position   Position  `json:"position"`
	Style      NodeStyle `json:"style"`
	Draggable  bool      `json:"draggable"`
	Selectable bool      `json:"selectable"`
}

type NodeData struct {
	Label string `json:"label"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type NodeStyle struct {
	Padding      int     `json:"padding"`
	Width        int     `json:"width"`
	BorderRadius int     `json:"borderRadius"`
	Border       string  `json:"border"`
	Background   string  `json:"background"`
	Color        string  `json:"color"`
	FontWeight   int     `json:"fontWeight"`
	FontSize     int     `json:"fontSize"`
	LineHeight   float64 `json:"lineHeight"`
}

type GraphEdge struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Type      string    `json:"type"`
	Animated  bool      `json:"animated"`
	MarkerEnd Marker    `json:"markerEnd"`
	Style     EdgeStyle `json:"style"`
}

type Marker struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

type EdgeStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

func emptyGraph() Graph {
	return Graph{Nodes: []GraphNode{}, Edges: []GraphEdge{}}
}

// BuildGraph runs the hierarchy builder and flattens the result.
func BuildGraph(summary string) Graph {
	if strings.TrimSpace(summary) == "" {
		return emptyGraph()
	}
	return Flatten(BuildHierarchy(summary))
}

// Flatten lays a hierarchy out depth-first: x follows depth, y follows visit
// order. A root without children produces an empty graph.
func Flatten(root *Node) Graph {
	return flattenWithLimit(root, MaxGraphNodes)
}

func flattenWithLimit(root *Node, limit int) Graph {
	if root == nil || len(root.Children) == 0 {
		return emptyGraph()
	}
	f := &flattener{limit: limit, graph: emptyGraph()}
	f.visit(root, "")
	return f.graph
}

type flattener struct {
	limit int
	order int
	graph Graph
}

func (f *flattener) visit(node *Node, parentID string) {
	if len(f.graph.Nodes) >= f.limit {
		return
	}

	id := node.ID
	if id == "" {
		id = fmt.Sprintf("node-%d", f.order)
	}

	f.graph.Nodes = append(f.graph.Nodes, GraphNode{
		ID:       id,
		Data:     NodeData{Label: truncate(node.Label, MaxLabelRunes)},
		Position: Position{X: node.Depth * SpacingX, Y: f.order * SpacingY},
		Style:    nodeStyle(node.Depth),
	})

	if parentID != "" {
		f.graph.Edges = append(f.graph.Edges, GraphEdge{
			ID:        fmt.Sprintf("e-%s-%s", parentID, id),
			Source:    parentID,
			Target:    id,
			Type:      "smoothstep",
			Animated:  node.Depth == 2,
			MarkerEnd: Marker{Type: "arrowclosed", Color: "#0284c7"},
			Style:     EdgeStyle{Stroke: "#94a3b8", StrokeWidth: 1.4},
		})
	}

	// Leaves still take a row so siblings never overlap.
	start := f.order
	for _, child := range node.Children {
		f.order++
		f.visit(child, id)
	}
	if f.order == start {
		f.order++
	}
}

func nodeStyle(depth int) NodeStyle {
	s := NodeStyle{
		Padding:      12,
		Width:        260,
		BorderRadius: 12,
		Border:       "1px solid #cbd5f5",
		Background:   "#ffffff",
		Color:        "#0f172a",
		FontWeight:   500,
		FontSize:     13,
		LineHeight:   1.4,
	}
	switch depth {
	case 0:
		s.Background = "#0ea5e9"
		s.Color = "#ffffff"
		s.FontWeight = 600
		s.FontSize = 16
	case 1:
		s.Width = 220
		s.Background = "#e0f2fe"
		s.FontWeight = 600
	}
	return s
}
