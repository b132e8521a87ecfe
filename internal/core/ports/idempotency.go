package ports

import "context"

// StoredResponse is a response captured for replay under an Idempotency-Key.
type StoredResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// IdempotencyStore remembers the first response produced for a key.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (*StoredResponse, bool, error)
	Save(ctx context.Context, scope, key string, resp StoredResponse) error
}
