package contact

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Throttle decides whether a client may send another message.
type Throttle interface {
	Allow(ctx context.Context, client string) (bool, error)
}

// NopThrottle allows everything.
type NopThrottle struct{}

func (NopThrottle) Allow(context.Context, string) (bool, error) {
	return true, nil
}

// RedisThrottle is a fixed-window counter per client kept in Redis.
type RedisThrottle struct {
	client *backend.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisThrottle allows limit messages per client per window.
func NewRedisThrottle(client *backend.Client, prefix string, limit int, window time.Duration) *RedisThrottle {
	return &RedisThrottle{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

func (t *RedisThrottle) key(client string) string {
	return t.prefix + "contact:" + client
}

// Allow counts the attempt and reports whether it is within the limit.
// The window starts at a client's first message. A counter left without
// an expiry by an earlier failure gets one on the next attempt.
func (t *RedisThrottle) Allow(ctx context.Context, client string) (bool, error) {
	key := t.key(client)

	var (
		incr *backend.IntCmd
		ttl  *backend.DurationCmd
	)
	if _, err := t.client.Pipelined(ctx, func(p backend.Pipeliner) error {
		incr = p.Incr(ctx, key)
		ttl = p.TTL(ctx, key)
		return nil
	}); err != nil {
		return false, fmt.Errorf("redis throttle: %w", err)
	}

	// -1 means no expiry is set.
	if ttl.Val() < 0 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("redis throttle: %w", err)
		}
	}
	return incr.Val() <= t.limit, nil
}
