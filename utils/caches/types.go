package caches

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// KeyValue is the cache-aside store used by the lookup endpoints. A failed
// read is a miss and a failed write is dropped; the cache never fails a
// request.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type redisImpl struct {
	client *redis.Client
}

type localImpl struct {
	store *gocache.Cache
}
