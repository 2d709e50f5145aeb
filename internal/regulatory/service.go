package regulatory

import (
	"context"
	"log/slog"

	"autocomply/internal/regulatory/metrics"
)

// Service exposes catalogue search as a standalone capability for interactive
// exploration. It shares the matching algorithm with decision evaluation but
// is not on the decision-making path.
type Service struct {
	catalog *Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the search service with its dependencies.
func NewService(catalog *Catalog, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
		metrics: m,
	}
}

// Search runs a catalogue query. An empty result list is a valid response,
// never an error.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) []ScoredSource {
	results := s.catalog.Search(query, opts)
	s.metrics.IncrementSearch(len(results) == 0)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "regulatory search",
			"query", query,
			"jurisdiction", opts.Jurisdiction,
			"results", len(results),
		)
	}
	return results
}

// Preview returns the top match for a query, or nil when nothing matches.
// Backs the interactive preview endpoint.
func (s *Service) Preview(ctx context.Context, query string, jurisdiction string) *Source {
	results := s.Search(ctx, query, SearchOptions{Jurisdiction: jurisdiction, TopK: 1})
	if len(results) == 0 {
		return nil
	}
	src := results[0].Source
	return &src
}
