package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for regulatory search.
type Metrics struct {
	Searches     prometheus.Counter
	EmptyResults prometheus.Counter
}

// New creates and registers the regulatory search metrics.
func New() *Metrics {
	return &Metrics{
		Searches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autocomply_regulatory_searches_total",
			Help: "Total regulatory catalogue searches",
		}),
		EmptyResults: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autocomply_regulatory_search_empty_total",
			Help: "Regulatory searches that returned no results",
		}),
	}
}

// IncrementSearch records one search and whether it came back empty.
func (m *Metrics) IncrementSearch(empty bool) {
	if m != nil {
		m.Searches.Inc()
		if empty {
			m.EmptyResults.Inc()
		}
	}
}
