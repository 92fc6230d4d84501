package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxRetries:    attempts,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("read: connection reset by peer")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(5), func() error {
		calls++
		return errors.New("relation \"log_records\" does not exist")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(2), func() error {
		calls++
		return errors.New("i/o timeout")
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
	assert.Equal(t, 2, calls)
}

func TestRetryOnTransientError_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(0), func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransientError(t *testing.T) {
	testCases := []struct {
		err      error
		expected bool
	}{
		{nil, false},
		{errors.New("deadlock detected"), true},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("unexpected EOF"), true},
		{errors.New("syntax error at or near"), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, IsTransientError(tc.err), "%v", tc.err)
	}
}
