// Package redis implements the optional read-side cache for the
// statistics projector. The cache is advisory: every operation degrades
// to the underlying store when Redis is unavailable.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phrazzld/enroll-api/internal/config"
)

// ErrCacheMiss is returned when the requested key is not in the cache.
var ErrCacheMiss = errors.New("stats cache miss")

// NewClient connects to Redis using the given configuration and verifies
// the connection with a ping.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// StatsCache caches serialized statistics pages under a short TTL.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewStatsCache creates a StatsCache over the given client.
// If logger is nil, a default logger will be used.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *StatsCache {
	if client == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "stats_cache")),
	}
}

// Get unmarshals the cached value for key into dest.
// Returns ErrCacheMiss if the key is absent or expired.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to read stats cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// A corrupt entry behaves like a miss so the caller recomputes.
		c.logger.Warn("discarding corrupt stats cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return ErrCacheMiss
	}

	return nil
}

// Set stores the value under key with the cache's TTL.
func (c *StatsCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal stats cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}

	return nil
}

// Close releases the underlying Redis connection.
func (c *StatsCache) Close() error {
	return c.client.Close()
}
