package services

import (
	"context"
	"time"
)

// KVCache is a TTL'd external cache (redis in practice). A nil KVCache is
// valid everywhere one is accepted: lookups miss and writes are dropped.
type KVCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
