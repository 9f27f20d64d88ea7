package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is the persisted cache-entry layout: an opaque JSON payload, an
// optional validator token for conditional revalidation, and an absolute
// expiry in epoch milliseconds.
type Entry struct {
	Payload   json.RawMessage `json:"payload"`
	Validator string          `json:"validator,omitempty"`
	ExpiresAt int64           `json:"expiryEpochMs"`
}

func (e Entry) Expired(now time.Time) bool {
	return now.UnixMilli() > e.ExpiresAt
}

// Store is a key-value cache with prefix enumeration. An entry past its
// expiry is treated as absent and purged on the next access. Concurrent
// writers follow last-writer-wins; staleness is bounded by the next
// successful revalidation.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
