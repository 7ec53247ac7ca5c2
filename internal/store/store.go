package store

import (
	"context"
	"time"
)

// Retention windows for the flat key space. Durable records live a year;
// derived records (match cache, conversations) expire daily.
const (
	TTLDurable = 365 * 24 * time.Hour
	TTLDay     = 24 * time.Hour
	TTLHour    = time.Hour
)

// Store is a flat key-value space holding JSON-serialized values with
// per-key expiration.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, out any) (bool, error)
	Delete(ctx context.Context, key string) error
}
