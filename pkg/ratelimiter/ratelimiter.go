// Package ratelimiter implements a fixed-window counter on Redis,
// used to slow down credential-stuffing on the login endpoint. With no
// Redis client configured every check passes.
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fitlink.app/backend/pkg/apperror"
)

// RateLimitError carries the retry delay alongside the rate-limit
// sentinel so handlers can emit a Retry-After header.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Unwrap() error {
	return apperror.ErrRateLimitExceeded
}

type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// New creates a limiter allowing limit hits per key per window.
func New(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow counts one hit against key and fails with a RateLimitError once
// the window budget is spent. Redis outages fail open.
func (r *RateLimiter) Allow(ctx context.Context, key string) error {
	if r == nil || r.client == nil {
		return nil
	}

	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil
	}

	if count == 1 {
		r.client.Expire(ctx, redisKey, r.window)
	}

	if count > r.limit {
		ttl, err := r.client.TTL(ctx, redisKey).Result()
		if err != nil || ttl < 0 {
			ttl = r.window
		}
		return &RateLimitError{
			Message:    "too many attempts, slow down",
			RetryAfter: ttl,
		}
	}

	return nil
}
