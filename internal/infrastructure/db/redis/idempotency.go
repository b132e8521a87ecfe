package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore keeps the first response produced for an Idempotency-Key.
// Key format: idempotency:<scope>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl uses 24h.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// Lookup returns the stored response for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, scope, key string) (*ports.StoredResponse, bool, error) {
	raw, err := s.client.Get(ctx, s.key(scope, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	var resp ports.StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false, fmt.Errorf("idempotency decode: %w", err)
	}
	return &resp, true, nil
}

// Save records resp under key unless a response is already stored, so
// concurrent retries keep the first outcome.
func (s *IdempotencyStore) Save(ctx context.Context, scope, key string, resp ports.StoredResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("idempotency encode: %w", err)
	}
	if err := s.client.SetNX(ctx, s.key(scope, key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency save: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
