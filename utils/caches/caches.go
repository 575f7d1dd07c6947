package caches

import (
	"context"
	"errors"
	"time"

	"twitter-gateway/models/constants"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// New picks the cache backend from configuration: Redis when REDIS_URL is
// set, the in-process store otherwise.
func New() KeyValue {
	redisURL := viper.GetString(constants.RedisURL)
	if redisURL == "" {
		log.Info().Msg("No Redis URL configured, using in-process cache")
		return NewLocal()
	}

	options, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Error().Err(err).Msg("Cannot parse Redis URL, using in-process cache")
		return NewLocal()
	}

	log.Info().Msgf("Using Redis cache at %s", options.Addr)
	return &redisImpl{
		client: redis.NewClient(options),
	}
}

// NewLocal returns the in-process backend backed by go-cache.
func NewLocal() KeyValue {
	return &localImpl{
		store: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (c *redisImpl) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str(constants.LogCacheKey, key).Msg("Cache read failed, treated as miss")
		}
		return nil, false
	}

	return data, true
}

func (c *redisImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warn().Err(err).Str(constants.LogCacheKey, key).Msg("Cache write failed, entry dropped")
	}
}

func (c *localImpl) Get(_ context.Context, key string) ([]byte, bool) {
	if x, found := c.store.Get(key); found {
		return x.([]byte), true
	}

	return nil, false
}

func (c *localImpl) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}
