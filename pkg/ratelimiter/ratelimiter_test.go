package ratelimiter

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitlink.app/backend/pkg/apperror"
)

func TestRateLimitErrorWrapsSentinel(t *testing.T) {
	err := &RateLimitError{Message: "too many attempts, slow down", RetryAfter: 30 * time.Second}

	assert.ErrorIs(t, err, apperror.ErrRateLimitExceeded)
	assert.Equal(t, http.StatusTooManyRequests, apperror.MapErrorToStatus(err))
	assert.Equal(t, "too many attempts, slow down", err.Error())
}

func TestAllowWithoutRedisPasses(t *testing.T) {
	var limiter *RateLimiter
	assert.NoError(t, limiter.Allow(context.Background(), "login:ana@example.com:203.0.113.7"))

	limiter = New(nil, 10, time.Minute)
	assert.NoError(t, limiter.Allow(context.Background(), "login:ana@example.com:203.0.113.7"))
}
