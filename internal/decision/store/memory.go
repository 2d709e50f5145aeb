// Package store provides the append-only decision log implementations.
package store

import (
	"context"
	"sync"

	"autocomply/internal/decision"
)

// InMemoryLog keeps decisions in process. It intentionally favors clarity
// over performance; outcomes are copied in and out so callers can never
// mutate a recorded decision.
type InMemoryLog struct {
	mu      sync.RWMutex
	byTrace map[string][]decision.Outcome
}

func NewInMemoryLog() *InMemoryLog {
	return &InMemoryLog{byTrace: make(map[string][]decision.Outcome)}
}

func (s *InMemoryLog) Append(_ context.Context, outcome decision.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTrace[outcome.TraceID] = append(s.byTrace[outcome.TraceID], outcome)
	return nil
}

func (s *InMemoryLog) ListByTrace(_ context.Context, traceID string) ([]decision.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recorded := s.byTrace[traceID]
	result := make([]decision.Outcome, len(recorded))
	copy(result, recorded)
	return result, nil
}
