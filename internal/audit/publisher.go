package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists audit events append-only so tests can swap sinks easily.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByTrace(ctx context.Context, traceID string) ([]Event, error)
}

// Publisher captures structured audit events through a Store.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit records one event, filling in id and timestamp when absent.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return p.store.Append(ctx, event)
}

// List returns the events recorded for one trace.
func (p *Publisher) List(ctx context.Context, traceID string) ([]Event, error) {
	return p.store.ListByTrace(ctx, traceID)
}
