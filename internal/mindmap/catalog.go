package mindmap

// Category is one entry of the fixed section catalog. Catalog order decides
// both classification precedence and the order sections are displayed in.
type Category struct {
	ID             string
	Title          string
	HeadingAliases []string
	TextHints      []string
	FallbackLimit  int
}

var catalog = []Category{
	{
		ID:             "quick-recap",
		Title:          "Quick Recap",
		HeadingAliases: []string{"quick recap", "recap", "overview", "summary", "at a glance"},
		TextHints:      []string{"recap", "summary", "overall"},
		FallbackLimit:  2,
	},
	{
		ID:             "key-concepts",
		Title:          "Key Concepts",
		HeadingAliases: []string{"key concepts", "core concepts", "key ideas", "key points", "concepts"},
		TextHints:      []string{"concept", "idea", "definition", "principle"},
		FallbackLimit:  4,
	},
	{
		ID:             "structures",
		Title:          "Structures & Connections",
		HeadingAliases: []string{"relationships", "connections", "structure", "trees", "graphs", "linkages"},
		TextHints:      []string{"relationship", "connected", "link", "works with", "depends on"},
		FallbackLimit:  3,
	},
	{
		ID:             "components",
		Title:          "Main Components",
		HeadingAliases: []string{"components", "modules", "parts", "building blocks"},
		TextHints:      []string{"component", "module", "part", "element", "layer"},
		FallbackLimit:  3,
	},
	{
		ID:             "processes",
		Title:          "Processes & Workflows",
		HeadingAliases: []string{"process", "workflow", "steps", "how it works", "procedures"},
		TextHints:      []string{"process", "step", "workflow", "sequence", "procedure", "algorithm"},
		FallbackLimit:  3,
	},
	{
		ID:             "examples",
		Title:          "Examples",
		HeadingAliases: []string{"examples", "use cases", "scenarios", "case study"},
		TextHints:      []string{"example", "for instance", "use case", "scenario"},
		FallbackLimit:  3,
	},
	{
		ID:             "advantages",
		Title:          "Advantages",
		HeadingAliases: []string{"advantages", "benefits", "strengths", "pros"},
		TextHints:      []string{"advantage", "benefit", "strength", "pro"},
		FallbackLimit:  3,
	},
	{
		ID:             "disadvantages",
		Title:          "Disadvantages",
		HeadingAliases: []string{"disadvantages", "limitations", "challenges", "cons"},
		TextHints:      []string{"disadvantage", "limitation", "drawback", "weakness", "con"},
		FallbackLimit:  3,
	},
	{
		ID:             "follow-up",
		Title:          "Suggested Follow-up",
		HeadingAliases: []string{"suggested follow-up", "next steps", "further study", "revision tips"},
		TextHints:      []string{"review", "practice", "next", "follow-up", "further"},
		FallbackLimit:  2,
	},
	{
		ID:             "key-takeaways",
		Title:          "Key Takeaways",
		HeadingAliases: []string{"key takeaways", "highlights"},
		TextHints:      []string{"takeaway", "remember", "highlight"},
		FallbackLimit:  3,
	},
	{
		ID:             "extra-notes",
		Title:          "Additional Notes",
		HeadingAliases: []string{"additional notes", "miscellaneous", "notes"},
		FallbackLimit:  3,
	},
}

// defaultCategory receives unheaded bullets that match no text hint.
const defaultCategory = 1

// Catalog returns a copy of the category catalog in display order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		c.HeadingAliases = append([]string(nil), c.HeadingAliases...)
		c.TextHints = append([]string(nil), c.TextHints...)
		out[i] = c
	}
	return out
}

// categoryByHeading returns the index of the first category with an alias
// contained in the heading, or -1.
func categoryByHeading(heading string) int {
	n := normalise(heading)
	for i, c := range catalog {
		for _, alias := range c.HeadingAliases {
			if containsNormalised(n, alias) {
				return i
			}
		}
	}
	return -1
}

// categoryByText returns the index of the first category with a text hint
// contained in text, or -1.
func categoryByText(text string) int {
	n := normalise(text)
	for i, c := range catalog {
		for _, hint := range c.TextHints {
			if containsNormalised(n, hint) {
				return i
			}
		}
	}
	return -1
}

func catalogIndex(id string) int {
	for i, c := range catalog {
		if c.ID == id {
			return i
		}
	}
	return -1
}
