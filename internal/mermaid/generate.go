package mermaid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/lecturemap/internal/chunker"
)

// Orientation is the declared layout direction of the diagram.
type Orientation string

const (
	TopDown   Orientation = "TD"
	LeftRight Orientation = "LR"
)

// ParseOrientation accepts "TD" or "LR" in any case. Empty means TD.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(TopDown):
		return TopDown, nil
	case string(LeftRight):
		return LeftRight, nil
	}
	return "", fmt.Errorf("unknown orientation %q (want TD or LR)", s)
}

const (
	DefaultMaxNodes             = 12
	DefaultMaxChildrenPerParent = 3

	rootID    = "root"
	rootLabel = "Lecture Overview"

	fallbackChunks    = 6
	minChunkRunes     = 20
	fallbackLabelCut  = 100
	placeholderFormat = "graph %s\n    Root[\"No content available\"]"
)

// Options tunes the generator. Zero fields take the defaults.
type Options struct {
	Orientation          Orientation
	MaxNodes             int
	MaxChildrenPerParent int
}

func DefaultOptions() Options {
	return Options{
		Orientation:          TopDown,
		MaxNodes:             DefaultMaxNodes,
		MaxChildrenPerParent: DefaultMaxChildrenPerParent,
	}
}

func (o Options) withDefaults() Options {
	if o.Orientation != LeftRight {
		o.Orientation = TopDown
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	if o.MaxChildrenPerParent <= 0 {
		o.MaxChildrenPerParent = DefaultMaxChildrenPerParent
	}
	return o
}

type tier string

const (
	tierRoot   tier = "root"
	tierParent tier = "parent"
	tierChild  tier = "child"
)

func (t tier) defaultLabel() string {
	switch t {
	case tierRoot:
		return "Root"
	case tierParent:
		return "Topic"
	}
	return "Item"
}

var (
	headingExclusions = []string{"example", "walkthrough", "implementation", "code", "detailed", "step-by-step"}
	bulletExclusions  = append(append([]string(nil), headingExclusions...), "step", "push", "pop", "loading")
	bulletPrefixes    = []string{"start", "use "}

	atxHeading     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	glyphBullet    = regexp.MustCompile(`^[-*•●◦▪–—]\s+(.+)$`)
	numberedBullet = regexp.MustCompile(`^\d+[.)]\s+(.+)$`)
)

type diagramNode struct {
	id    string
	label string
	tier  tier
}

type diagramEdge struct {
	source string
	target string
}

// generator holds the state of one Generate call.
type generator struct {
	opts     Options
	nodes    []diagramNode
	edges    []diagramEdge
	counter  int
	parent   string
	topic    string
	children map[string]int

	// skipDepth is the depth of the excluded heading whose section is being
	// dropped, or 0.
	skipDepth int
}

// Generate converts a Markdown summary into flowchart text. Headings become
// topic nodes, bullets become items under the most recent heading, and
// example or procedural content is left out. An empty summary yields a
// one-node placeholder graph.
func Generate(summary string, opts Options) string {
	opts = opts.withDefaults()
	if strings.TrimSpace(summary) == "" {
		return fmt.Sprintf(placeholderFormat, opts.Orientation)
	}

	g := &generator{
		opts:     opts,
		nodes:    []diagramNode{{id: rootID, label: rootLabel, tier: tierRoot}},
		children: make(map[string]int),
	}

	lines := strings.Split(summary, "\n")
	for i := 0; i < len(lines) && len(g.nodes) < opts.MaxNodes; i++ {
		if level, text, ok := parseHeading(lines[i]); ok {
			g.heading(level, text)
			continue
		}
		if text, ok := parseBullet(lines[i]); ok {
			g.bullet(text)
		}
	}

	if len(g.nodes) == 1 {
		g.paragraphFallback(summary)
	}

	return g.emit()
}

func parseHeading(line string) (int, string, bool) {
	m := atxHeading.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), strings.TrimSpace(m[2]), true
}

func parseBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	if m := glyphBullet.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := numberedBullet.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t") {
		return trimmed, true
	}
	return "", false
}

func excluded(label string, keywords, prefixes []string) bool {
	lower := strings.ToLower(label)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func (g *generator) nextID(label string) string {
	id := uniqueID(label, g.counter)
	g.counter++
	return id
}

// heading attaches level 1-2 headings to the root and deeper ones to the
// current parent. Only one parent is tracked, so skipped levels flatten.
// An excluded heading drops everything up to the next heading at its depth
// or shallower, sub-headings and bullets included.
func (g *generator) heading(level int, text string) {
	depth := max(level, 2)
	if g.skipDepth > 0 {
		if depth > g.skipDepth {
			return
		}
		g.skipDepth = 0
	}

	label := sanitizeLabel(text)
	if excluded(label, headingExclusions, nil) {
		g.parent = ""
		g.skipDepth = depth
		return
	}

	id := g.nextID(label)
	source := rootID
	if depth > 2 {
		switch {
		case g.parent != "":
			source = g.parent
		case g.topic != "":
			source = g.topic
		}
	}
	g.edges = append(g.edges, diagramEdge{source: source, target: id})
	g.parent = id

	t := tierParent
	if depth > 2 {
		t = tierChild
	} else {
		g.topic = id
	}
	g.nodes = append(g.nodes, diagramNode{id: id, label: label, tier: t})
}

// bullet attaches an item to the current parent. The per-parent cap counts
// bullet children only; sub-heading and root edges are exempt, so a capped
// heading can still gain deeper headings.
func (g *generator) bullet(text string) {
	if g.parent == "" {
		return
	}
	label := sanitizeLabel(text)
	if excluded(label, bulletExclusions, bulletPrefixes) {
		return
	}
	if g.children[g.parent] >= g.opts.MaxChildrenPerParent {
		return
	}

	id := g.nextID(label)
	g.children[g.parent]++
	g.edges = append(g.edges, diagramEdge{source: g.parent, target: id})
	g.nodes = append(g.nodes, diagramNode{id: id, label: label, tier: tierChild})
}

// paragraphFallback attaches blank-line separated chunks to the root when no
// heading produced a node.
func (g *generator) paragraphFallback(summary string) {
	var chunks []string
	for _, p := range chunker.Paragraphs(summary) {
		if len([]rune(p)) > minChunkRunes {
			chunks = append(chunks, p)
		}
	}
	for idx, chunk := range chunker.Limit(chunks, fallbackChunks) {
		if len(g.nodes) >= g.opts.MaxNodes {
			return
		}
		id := fmt.Sprintf("chunk-%d", idx)
		g.edges = append(g.edges, diagramEdge{source: rootID, target: id})
		g.nodes = append(g.nodes, diagramNode{
			id:    id,
			label: sanitizeLabel(firstRunes(chunk, fallbackLabelCut)),
			tier:  tierChild,
		})
	}
}

func (g *generator) emit() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph %s\n", g.opts.Orientation)

	for i, n := range g.nodes {
		id := cleanID(n.id)
		if id == "" {
			id = fmt.Sprintf("node%d", i)
			if n.tier == tierRoot {
				id = rootID
			}
		}
		label := sanitizeLabel(n.label)
		if label == "" {
			label = n.tier.defaultLabel()
		}
		fmt.Fprintf(&b, "    %s[\"%s\"]:::%s\n", id, label, n.tier)
	}

	for _, e := range g.edges {
		source, target := cleanID(e.source), cleanID(e.target)
		if source == "" || target == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s --> %s\n", source, target)
	}

	b.WriteString("\n")
	b.WriteString("    classDef root fill:#0ea5e9,stroke:#0284c7,stroke-width:3px,color:#ffffff\n")
	b.WriteString("    classDef parent fill:#e0f2fe,stroke:#0ea5e9,stroke-width:2px,color:#0f172a\n")
	b.WriteString("    classDef child fill:#ffffff,stroke:#94a3b8,stroke-width:1px,color:#0f172a\n")

	return strings.TrimSpace(b.String())
}
