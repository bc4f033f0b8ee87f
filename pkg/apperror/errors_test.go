package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{ErrInternal, http.StatusInternalServerError},
		{errors.New("driver: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatus(tc.err), tc.err.Error())
	}
}

func TestMapErrorToStatusUnwrapsSentinels(t *testing.T) {
	err := fmt.Errorf("workout plan not found: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatus(err))

	err = fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrForbidden))
	assert.Equal(t, http.StatusForbidden, MapErrorToStatus(err))
}
