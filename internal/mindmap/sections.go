package mindmap

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dgallion1/lecturemap/internal/chunker"
)

const (
	// MaxItemsPerSection caps the item children of each section node.
	MaxItemsPerSection = 5
	// MaxLabelRunes is the item label budget, ellipsis included.
	MaxLabelRunes = 110

	fallbackSentences = 6
	insightsID        = "key-insights"
	customPrefix      = "custom-"
	insightsTitle     = "Key Insights"
)

// Section is a category populated from one summary. Items keep insertion
// order and are unique within the section.
type Section struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`

	rank int
}

func (s *Section) add(value string) {
	clean := truncate(value, MaxLabelRunes)
	if clean == "" || slices.Contains(s.Items, clean) {
		return
	}
	s.Items = append(s.Items, clean)
}

// sectionSet holds the sections of a single parse in discovery order.
// Catalog sections are keyed by id, ad-hoc ones by their folded title.
type sectionSet struct {
	byKey map[string]*Section
	order []*Section
}

func newSectionSet() *sectionSet {
	return &sectionSet{byKey: make(map[string]*Section)}
}

func (ss *sectionSet) ensure(key, id, title string, rank int) *Section {
	if s, ok := ss.byKey[key]; ok {
		return s
	}
	s := &Section{ID: id, Title: title, rank: rank}
	ss.byKey[key] = s
	ss.order = append(ss.order, s)
	return s
}

func (ss *sectionSet) forCategory(idx int) *Section {
	c := catalog[idx]
	return ss.ensure(c.ID, c.ID, c.Title, idx)
}

func (ss *sectionSet) forHeading(title string) *Section {
	if idx := categoryByHeading(title); idx >= 0 {
		return ss.forCategory(idx)
	}
	key := "title:" + strings.ToLower(strings.Join(strings.Fields(title), " "))
	slug := slugify(title)
	if slug == "" {
		slug = "section"
	}
	return ss.ensure(key, customPrefix+slug, title, len(catalog))
}

// pool returns up to n distinct items from every section except skipID.
func (ss *sectionSet) pool(skipID string, n int) []string {
	var out []string
	for _, s := range ss.order {
		if s.ID == skipID {
			continue
		}
		for _, item := range s.Items {
			if len(out) >= n {
				return out
			}
			if !slices.Contains(out, item) {
				out = append(out, item)
			}
		}
	}
	return out
}

// Outline classifies a summary into catalog and ad-hoc sections. Sections
// come back in catalog order, ad-hoc sections last in discovery order. When
// no headed or bulleted content exists, up to six sentences are returned
// under a single "Key Insights" section.
func Outline(summary string) []Section {
	if strings.TrimSpace(summary) == "" {
		return nil
	}

	sections := extractSections(summary)
	if len(sections) > 0 {
		return sections
	}

	insights := &Section{ID: insightsID, Title: insightsTitle}
	for _, sentence := range chunker.Limit(chunker.Sentences(summary), fallbackSentences) {
		insights.add(sentence)
	}
	if len(insights.Items) == 0 {
		return nil
	}
	return []Section{*insights}
}

func extractSections(summary string) []Section {
	set := newSectionSet()
	var unassigned []string
	var current *Section

	for _, raw := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if h, ok := splitHeading(trimmed); ok {
			current = set.forHeading(h.title)
			if h.remainder != "" {
				current.add(stripBullet(h.remainder))
			}
			continue
		}

		text, ok := bulletText(raw)
		if !ok {
			continue
		}
		if current != nil {
			current.add(text)
		} else {
			unassigned = append(unassigned, text)
		}
	}

	for _, text := range unassigned {
		idx := categoryByText(text)
		if idx < 0 {
			idx = defaultCategory
		}
		set.forCategory(idx).add(text)
	}

	for idx, c := range catalog {
		if s, ok := set.byKey[c.ID]; ok && len(s.Items) > 0 {
			continue
		}
		pooled := set.pool(c.ID, c.FallbackLimit)
		if len(pooled) == 0 {
			continue
		}
		s := set.forCategory(idx)
		for _, item := range pooled {
			s.add(item)
		}
	}

	var out []Section
	for _, s := range set.order {
		if len(s.Items) > 0 {
			out = append(out, *s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank < out[j].rank })
	disambiguate(out)
	return out
}

// disambiguate renames ad-hoc sections whose id, or one of whose item ids,
// is already taken by an earlier section or item. Item ids are the section
// id plus "-<index>", so "## Foo 0" would otherwise shadow the first item of
// "## Foo". Renamed sections get a "-<n>" suffix, n counting from 2.
func disambiguate(sections []Section) {
	taken := make(map[string]bool)
	clashes := func(id string, items int) bool {
		if taken[id] {
			return true
		}
		for i := range min(items, MaxItemsPerSection) {
			if taken[itemID(id, i)] {
				return true
			}
		}
		return false
	}

	for i := range sections {
		s := &sections[i]
		n := min(len(s.Items), MaxItemsPerSection)
		if strings.HasPrefix(s.ID, customPrefix) {
			base := s.ID
			for k := 2; clashes(s.ID, n); k++ {
				s.ID = fmt.Sprintf("%s-%d", base, k)
			}
		}
		taken[s.ID] = true
		for j := range n {
			taken[itemID(s.ID, j)] = true
		}
	}
}

func itemID(sectionID string, index int) string {
	return fmt.Sprintf("%s-%d", sectionID, index)
}
