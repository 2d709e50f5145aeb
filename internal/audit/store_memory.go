package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps audit events in process. It intentionally favors
// clarity over performance.
type InMemoryStore struct {
	mu      sync.RWMutex
	events  []Event
	byTrace map[string][]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byTrace: make(map[string][]int)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTrace[event.TraceID] = append(s.byTrace[event.TraceID], len(s.events))
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByTrace(_ context.Context, traceID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idxs := s.byTrace[traceID]
	result := make([]Event, 0, len(idxs))
	for _, i := range idxs {
		result = append(result, s.events[i])
	}
	return result, nil
}
