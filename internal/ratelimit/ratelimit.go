// Package ratelimit implements a fixed-window request limiter shared across instances through Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter is the subset of *redis.Client the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Info describes the state of a client's current window.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter allows Limit requests per client per Window.
// Windows are aligned to multiples of Window so every instance counts into the same key.
type Limiter struct {
	rdb    Counter
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewLimiter(rdb Counter, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, window: window, prefix: "ratelimit:", now: time.Now}
}

// Allow counts one request for clientID. A Redis failure is returned to the caller with Allowed set.
func (l *Limiter) Allow(ctx context.Context, clientID string) (Info, error) {
	now := l.now()
	start := now.Truncate(l.window)
	reset := start.Add(l.window)
	info := Info{Allowed: true, Limit: l.limit, Remaining: l.limit, ResetTime: reset}

	key := fmt.Sprintf("%s%s:%d", l.prefix, clientID, start.Unix())
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return info, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		// First hit in this window owns the TTL; a little slack keeps the key past the boundary.
		if err := l.rdb.Expire(ctx, key, l.window+time.Second).Err(); err != nil {
			return info, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	info.Remaining = l.limit - int(n)
	if info.Remaining < 0 {
		info.Remaining = 0
	}
	if int(n) > l.limit {
		info.Allowed = false
		info.RetryAfter = reset.Sub(now)
	}
	return info, nil
}
