package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/lecturemap/internal/mermaid"
	"github.com/dgallion1/lecturemap/internal/stats"
)

const lectureSummary = `## Key Concepts
- Stacks are last in first out
- Queues are first in first out

## Examples
- Browser history uses a stack
`

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(8, stats.New(time.Hour))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderer_RendersAllViews(t *testing.T) {
	r := newTestRenderer(t)
	res := r.Render(lectureSummary, mermaid.DefaultOptions())

	if res.Tree == nil || len(res.Tree.Children) == 0 {
		t.Fatal("expected a populated tree")
	}
	if len(res.Graph.Nodes) != res.Tree.Count() {
		t.Errorf("expected %d graph nodes, got %d", res.Tree.Count(), len(res.Graph.Nodes))
	}
	if len(res.Graph.Edges) != len(res.Graph.Nodes)-1 {
		t.Errorf("expected %d edges, got %d", len(res.Graph.Nodes)-1, len(res.Graph.Edges))
	}
	if len(res.Outline) == 0 {
		t.Error("expected outline sections")
	}
	if !strings.HasPrefix(res.Mermaid, "graph TD") {
		t.Errorf("expected TD diagram, got %q", res.Mermaid)
	}
	if !res.MermaidValid || res.MermaidError != "" {
		t.Errorf("expected valid diagram, got error %q", res.MermaidError)
	}
}

func TestRenderer_CachesBySummaryAndOptions(t *testing.T) {
	r := newTestRenderer(t)
	first := r.Render(lectureSummary, mermaid.DefaultOptions())
	second := r.Render(lectureSummary, mermaid.DefaultOptions())
	if first != second {
		t.Error("expected cached result for identical input")
	}

	lr := r.Render(lectureSummary, mermaid.Options{Orientation: mermaid.LeftRight})
	if lr == first {
		t.Error("expected a separate result for a different orientation")
	}
	if !strings.HasPrefix(lr.Mermaid, "graph LR") {
		t.Errorf("expected LR diagram, got %q", lr.Mermaid)
	}
	if r.CacheLen() != 2 {
		t.Errorf("expected 2 cached results, got %d", r.CacheLen())
	}

	snap := r.Stats()
	if snap.CacheHits != 1 || snap.CacheMisses != 2 {
		t.Errorf("expected hits=1 misses=2, got hits=%d misses=%d", snap.CacheHits, snap.CacheMisses)
	}
	for _, kind := range []string{"graph", "tree", "mermaid"} {
		if snap.Kinds[kind].Count != 2 {
			t.Errorf("expected 2 %s samples, got %d", kind, snap.Kinds[kind].Count)
		}
	}
}

func TestRenderer_EmptySummary(t *testing.T) {
	r := newTestRenderer(t)
	res := r.Render("", mermaid.DefaultOptions())

	if len(res.Graph.Nodes) != 0 || len(res.Graph.Edges) != 0 {
		t.Errorf("expected empty graph, got %d nodes", len(res.Graph.Nodes))
	}
	if res.Outline == nil || len(res.Outline) != 0 {
		t.Errorf("expected empty non-nil outline, got %#v", res.Outline)
	}
	want := "graph TD\n    Root[\"No content available\"]"
	if res.Mermaid != want {
		t.Errorf("expected placeholder %q, got %q", want, res.Mermaid)
	}
	if !res.MermaidValid {
		t.Errorf("expected placeholder to validate, got %q", res.MermaidError)
	}
}

func TestNewRenderer_InvalidSize(t *testing.T) {
	if _, err := NewRenderer(0, nil); err == nil {
		t.Error("expected error for zero cache size")
	}
}
