package sink

import (
	"context"
	"errors"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logfacade/internal/domain/error"
)

// RedisSinkOptions configures a RedisSink
type RedisSinkOptions struct {
	// Key is the list records are appended to
	Key string
	// MaxLen trims the list to its newest MaxLen entries; 0 keeps everything
	MaxLen        int64
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// RedisSink appends JSON-encoded records to a redis list
type RedisSink struct {
	client redis.UniversalClient
	opts   RedisSinkOptions
}

// NewRedisSink creates a sink writing through client
func NewRedisSink(client redis.UniversalClient, opts RedisSinkOptions) (*RedisSink, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is nil", domainerr.ErrInvalidSinkConfig)
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("%w: redis key is required", domainerr.ErrInvalidSinkConfig)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 500 * time.Millisecond
	}
	if opts.RetryAttempts < 1 {
		opts.RetryAttempts = 1
	}
	return &RedisSink{client: client, opts: opts}, nil
}

// Name identifies the sink in error reports
func (s *RedisSink) Name() string { return "redis" }

// Write pushes record onto the list and trims it in the same pipeline
func (s *RedisSink) Write(record entity.LogRecord) error {
	payload, err := json.Marshal(record.Fields())
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.Timeout)
	defer cancel()

	err = retry.New(
		retry.Context(ctx),
		retry.Attempts(uint(s.opts.RetryAttempts)),
		retry.Delay(s.opts.RetryDelay),
		retry.RetryIf(isRetryableRedisError),
		retry.LastErrorOnly(true),
	).Do(func() error {
		_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
			p.RPush(ctx, s.opts.Key, payload)
			if s.opts.MaxLen > 0 {
				p.LTrim(ctx, s.opts.Key, -s.opts.MaxLen, -1)
			}
			return nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domainerr.ErrSinkUnavailable, err)
	}
	return nil
}

// Flush is a no-op; every Write is acknowledged before it returns
func (s *RedisSink) Flush() error { return nil }

// Close closes the client
func (s *RedisSink) Close() error {
	return s.client.Close()
}

func isRetryableRedisError(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
