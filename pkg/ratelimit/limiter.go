package ratelimit

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Limiter is a per-caller fixed-window request limiter. It counts on redis
// so the window survives restarts and is shared between instances; when
// redis is unavailable it degrades to an in-process window rather than
// letting requests through unmetered.
type Limiter struct {
	rdb    *redis.Client
	local  *gocache.Cache
	limit  int
	window time.Duration
}

func NewLimiter(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		rdb:    rdb,
		local:  gocache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

// Allow reports whether callerId may issue another request in the current
// window. The second return value is the number of requests already used.
func (l *Limiter) Allow(ctx context.Context, callerId string) (bool, int, error) {
	key := fmt.Sprintf("ratelimit:chat:%s", callerId)

	if l.rdb != nil {
		count, err := l.rdb.Incr(ctx, key).Result()
		if err == nil {
			if count > 1 {
				return count <= int64(l.limit), int(count), nil
			}
			// First request of the window: the counter must get an expiry,
			// or the caller stays throttled forever once the limit is hit.
			if expErr := l.rdb.Expire(ctx, key, l.window).Err(); expErr == nil {
				return count <= int64(l.limit), int(count), nil
			}
			l.rdb.Del(ctx, key)
		}
		// Redis down or counter left without expiry: use the local window
	}

	count, err := l.local.IncrementInt(key, 1)
	if err != nil {
		l.local.Set(key, 1, l.window)
		count = 1
	}
	return count <= l.limit, count, nil
}

// Limit returns the configured per-window request limit.
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}
