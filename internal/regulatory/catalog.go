package regulatory

import (
	"sort"
	"strings"

	pstrings "autocomply/pkg/platform/strings"
)

// Catalog is a constructor-injected, read-only snippet store. Lookups never
// error: unknown ids are dropped and empty search results are valid, because
// missing regulatory text must never block a decision response.
type Catalog struct {
	sources []Source
	byID    map[string]int
}

// NewCatalog builds a catalogue from the given sources. Insertion order is
// preserved and used as the tie-breaker in search scoring. Later duplicates
// of an id are ignored.
func NewCatalog(sources []Source) *Catalog {
	c := &Catalog{
		sources: make([]Source, 0, len(sources)),
		byID:    make(map[string]int, len(sources)),
	}
	for _, s := range sources {
		if s.ID == "" {
			continue
		}
		if _, ok := c.byID[s.ID]; ok {
			continue
		}
		c.byID[s.ID] = len(c.sources)
		c.sources = append(c.sources, s)
	}
	return c
}

// Len reports the number of catalogued sources.
func (c *Catalog) Len() int {
	return len(c.sources)
}

// GetByIDs returns matching records in the order requested. Unknown ids are
// silently dropped.
func (c *Catalog) GetByIDs(ids []string) []Source {
	result := make([]Source, 0, len(ids))
	for _, id := range pstrings.DedupeAndTrim(ids) {
		if idx, ok := c.byID[id]; ok {
			result = append(result, c.sources[idx])
		}
	}
	return result
}

// SearchOptions narrows a catalogue search.
type SearchOptions struct {
	Jurisdiction string
	Tags         []string
	TopK         int
}

// Search scores each record by case-insensitive token overlap between the
// query and the record's title, snippet, and tags. Results are score
// descending, ties broken by insertion order, at most TopK entries.
func (c *Catalog) Search(query string, opts SearchOptions) []ScoredSource {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = 5
	}
	wantTags := pstrings.DedupeAndTrimLower(opts.Tags)

	var matches []ScoredSource
	for _, s := range c.sources {
		if opts.Jurisdiction != "" && !strings.EqualFold(s.Jurisdiction, opts.Jurisdiction) {
			continue
		}
		if len(wantTags) > 0 && !hasAnyTag(s.Tags, wantTags) {
			continue
		}
		score := overlapScore(tokens, s)
		if score > 0 {
			matches = append(matches, ScoredSource{Source: s, Score: score})
		}
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

func overlapScore(queryTokens []string, s Source) float64 {
	haystack := make(map[string]struct{})
	for _, t := range tokenize(s.Title) {
		haystack[t] = struct{}{}
	}
	for _, t := range tokenize(s.Snippet) {
		haystack[t] = struct{}{}
	}
	for _, tag := range s.Tags {
		for _, t := range tokenize(tag) {
			haystack[t] = struct{}{}
		}
	}

	hits := 0
	for _, t := range queryTokens {
		if _, ok := haystack[t]; ok {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return float64(hits) / float64(len(queryTokens))
}

func hasAnyTag(have []string, want []string) bool {
	for _, h := range have {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	return pstrings.DedupeAndTrim(fields)
}
