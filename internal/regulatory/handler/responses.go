package handler

import "autocomply/internal/regulatory"

// SearchResult is one hit in a search response. `source` carries the
// citation label clients render next to the snippet.
type SearchResult struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Jurisdiction string  `json:"jurisdiction"`
	Source       string  `json:"source"`
	Snippet      string  `json:"snippet"`
	URL          string  `json:"url,omitempty"`
	Score        float64 `json:"score"`
}

// SearchResponse is the HTTP response for POST /rag/regulatory/search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// PreviewResponse is the HTTP response for GET /rag/regulatory/preview.
type PreviewResponse struct {
	Found  bool          `json:"found"`
	Result *SearchResult `json:"result,omitempty"`
}

// FromSource converts a catalogue source to a search result.
func FromSource(s regulatory.Source) SearchResult {
	return SearchResult{
		ID:           s.ID,
		Title:        s.Title,
		Jurisdiction: s.Jurisdiction,
		Source:       s.CitationLabel,
		Snippet:      s.Snippet,
		URL:          s.URL,
	}
}

// FromScoredSources converts scored catalogue hits to a search response.
func FromScoredSources(scored []regulatory.ScoredSource) SearchResponse {
	results := make([]SearchResult, 0, len(scored))
	for _, s := range scored {
		r := FromSource(s.Source)
		r.Score = s.Score
		results = append(results, r)
	}
	return SearchResponse{Results: results}
}
