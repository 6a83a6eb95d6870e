// Package limiter implements a fixed-window request limiter on Redis.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more attempt identified by key is allowed.
type Limiter interface {
	// Allow reports whether the attempt may proceed. On backend errors it
	// returns true together with the error.
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter counts attempts per key with INCR and starts the window with
// EXPIRE NX in the same transaction, so a counter never outlives its window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisClient parses url, connects and pings the server.
func NewRedisClient(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().Str("func", "NewRedisClient").Str("addr", opts.Addr).Msg("redis connected")
	return client, nil
}

// NewRedisLimiter allows limit attempts per window for every key. Keys are
// namespaced with prefix.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("rl:%s:%s", l.prefix, key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return true, fmt.Errorf("incr %s: %w", redisKey, err)
	}

	count := incr.Val()
	return count <= l.limit, nil
}
