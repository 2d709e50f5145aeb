package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"autocomply/internal/decision"
)

const (
	// Redis key prefixes for decision rows and per-trace indexes.
	decisionKeyPrefix = "acx:decision:"
	traceKeyPrefix    = "acx:trace:"
)

// RedisLog is a Redis-backed decision log for distributed deployments where
// multiple instances record into the same trace. Each outcome is stored
// under its own key; the trace index is an append-only list, so concurrent
// appends never clobber each other.
type RedisLog struct {
	client *redis.Client
}

// NewRedisLog constructs a Redis-backed decision log.
func NewRedisLog(client *redis.Client) *RedisLog {
	return &RedisLog{client: client}
}

func (s *RedisLog) Append(ctx context.Context, outcome decision.Outcome) error {
	raw, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, decisionKeyPrefix+outcome.ID, raw, 0)
	pipe.RPush(ctx, traceKeyPrefix+outcome.TraceID, outcome.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append decision: %w", err)
	}
	return nil
}

func (s *RedisLog) ListByTrace(ctx context.Context, traceID string) ([]decision.Outcome, error) {
	ids, err := s.client.LRange(ctx, traceKeyPrefix+traceID, 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("list trace ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = decisionKeyPrefix + id
	}
	rows, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get decisions: %w", err)
	}

	result := make([]decision.Outcome, 0, len(ids))
	for i, row := range rows {
		if row == nil {
			// Index entry without a row is a data-integrity gap, not a
			// request failure.
			continue
		}
		raw, ok := row.(string)
		if !ok {
			return nil, fmt.Errorf("decision %s: unexpected value type %T", ids[i], row)
		}
		var o decision.Outcome
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return nil, fmt.Errorf("unmarshal decision %s: %w", ids[i], err)
		}
		result = append(result, o)
	}
	return result, nil
}
