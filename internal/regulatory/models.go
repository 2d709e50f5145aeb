// Package regulatory holds the read-only catalogue of regulatory rule
// snippets cited as evidence by decision engines.
package regulatory

// Severity classifies how strongly a source gates a decision. Advisory only;
// the decision engines carry their own severity tables.
type Severity string

const (
	SeverityBlock  Severity = "block"
	SeverityReview Severity = "review"
	SeverityInfo   Severity = "info"
)

// Source is one citable piece of regulatory text. IDs are immutable once the
// catalogue is constructed and the catalogue itself is never mutated at
// evaluation time.
type Source struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Jurisdiction  string   `yaml:"jurisdiction" json:"jurisdiction"`
	AppliesTo     []string `yaml:"applies_to" json:"applies_to,omitempty"`
	CitationLabel string   `yaml:"citation_label" json:"citation_label"`
	Snippet       string   `yaml:"snippet" json:"snippet"`
	Tags          []string `yaml:"tags" json:"tags,omitempty"`
	Severity      Severity `yaml:"severity" json:"severity"`
	URL           string   `yaml:"url" json:"url,omitempty"`
}

// ScoredSource pairs a source with its search relevance score.
type ScoredSource struct {
	Source Source
	Score  float64
}
