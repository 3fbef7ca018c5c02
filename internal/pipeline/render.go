package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dgallion1/lecturemap/internal/mermaid"
	"github.com/dgallion1/lecturemap/internal/mindmap"
	"github.com/dgallion1/lecturemap/internal/stats"
)

// Result bundles every view rendered from one summary. Cached results are
// shared between callers and must not be modified.
type Result struct {
	Graph        mindmap.Graph     `json:"graph"`
	Tree         *mindmap.Node     `json:"tree"`
	Outline      []mindmap.Section `json:"outline"`
	Mermaid      string            `json:"mermaid"`
	MermaidValid bool              `json:"mermaid_valid"`
	MermaidError string            `json:"mermaid_error,omitempty"`
}

// Renderer runs both engines over a summary and memoises complete results.
type Renderer struct {
	cache *lru.Cache[string, *Result]
	stats *stats.RenderStats
}

func NewRenderer(cacheSize int, st *stats.RenderStats) (*Renderer, error) {
	cache, err := lru.New[string, *Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}
	if st == nil {
		st = stats.New(time.Hour)
	}
	return &Renderer{cache: cache, stats: st}, nil
}

// Render returns the graph, tree, outline and diagram text for summary.
func (r *Renderer) Render(summary string, opts mermaid.Options) *Result {
	key := cacheKey(summary, opts)
	if res, ok := r.cache.Get(key); ok {
		r.stats.CacheHit()
		return res
	}
	r.stats.CacheMiss()

	res := &Result{
		Tree:    r.Tree(summary),
		Graph:   r.Graph(summary),
		Outline: mindmap.Outline(summary),
		Mermaid: r.Mermaid(summary, opts),
	}
	if res.Outline == nil {
		res.Outline = []mindmap.Section{}
	}
	if err := mermaid.Validate(res.Mermaid); err != nil {
		res.MermaidError = err.Error()
	} else {
		res.MermaidValid = true
	}
	r.cache.Add(key, res)
	return res
}

// Graph builds the flattened hierarchy and records its latency.
func (r *Renderer) Graph(summary string) mindmap.Graph {
	start := time.Now()
	g := mindmap.BuildGraph(summary)
	r.stats.Record("graph", time.Since(start))
	return g
}

// Tree builds the nested hierarchy and records its latency.
func (r *Renderer) Tree(summary string) *mindmap.Node {
	start := time.Now()
	n := mindmap.BuildHierarchy(summary)
	r.stats.Record("tree", time.Since(start))
	return n
}

// Mermaid generates diagram text and records its latency.
func (r *Renderer) Mermaid(summary string, opts mermaid.Options) string {
	start := time.Now()
	code := mermaid.Generate(summary, opts)
	r.stats.Record("mermaid", time.Since(start))
	return code
}

func (r *Renderer) Stats() stats.Snapshot {
	return r.stats.Snapshot()
}

// CacheLen returns the number of cached results.
func (r *Renderer) CacheLen() int {
	return r.cache.Len()
}

func cacheKey(summary string, opts mermaid.Options) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d\x00", opts.Orientation, opts.MaxNodes, opts.MaxChildrenPerParent)
	h.Write([]byte(summary))
	return hex.EncodeToString(h.Sum(nil))
}
