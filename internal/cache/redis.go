package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskkeeper/go-task-keeper/internal/config"
	"github.com/taskkeeper/go-task-keeper/internal/logger"
)

// RedisCache is the go-redis backed implementation of [TaskCache].
type RedisCache struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// Connect builds a Redis client from cfg and verifies it with a ping bounded
// by cfg.ConnectTimeout. The caller decides what to do on failure; the rest
// of the application never dials the cache again.
//
// Returns an error when cfg.Addr is empty so that startup sequencing treats
// "no cache configured" the same way as "cache down": degraded, store-only
// reads.
func Connect(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("no cache address configured")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache ping failed: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Msg("connected to cache successfully")
	return rdb, nil
}

// NewRedisCache wraps an already connected client.
func NewRedisCache(rdb *redis.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{
		rdb:    rdb,
		logger: log,
	}
}

// Get fetches the snapshot stored under key.
//
// A missing key maps to NotFound; any other client error maps to Unavailable
// and is logged at debug level, never returned.
func (c *RedisCache) Get(ctx context.Context, key string) Lookup {
	val, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return Lookup{Outcome: Found, Value: val}
	case errors.Is(err, redis.Nil):
		return Lookup{Outcome: NotFound}
	default:
		logger.FromContext(ctx).Debug().Err(err).Str("key", key).Msg("cache read failed")
		return Lookup{Outcome: Unavailable}
	}
}

// SetWithTTL stores value under key with the given lifetime.
func (c *RedisCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// DeleteByPrefix enumerates keys matching pattern with SCAN and deletes them
// in a single DEL batch. An empty match is not an error.
func (c *RedisCache) DeleteByPrefix(ctx context.Context, pattern string) error {
	var keys []string

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache key scan failed: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidation failed: %w", err)
	}

	return nil
}
