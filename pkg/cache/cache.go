package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
//
// Get reports a miss with ok=false and a nil error. Implementations must
// be safe for concurrent use; the pipeline renders formats in parallel.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour
