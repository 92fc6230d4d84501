package database

import (
	"context"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
	}
}

// RetryOnTransientError runs operation until it succeeds, fails with a
// non-transient error, runs out of attempts or ctx is done. Only the last
// error is returned.
func RetryOnTransientError(ctx context.Context, config RetryConfig, operation func() error) error {
	attempts := config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(config.RetryInterval),
		retry.RetryIf(IsTransientError),
		retry.LastErrorOnly(true),
	}
	if config.MaxInterval > 0 {
		opts = append(opts, retry.MaxDelay(config.MaxInterval))
	}

	return retry.New(opts...).Do(operation)
}

// IsTransientError checks if an error is transient and can be retried
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "eof")
}
