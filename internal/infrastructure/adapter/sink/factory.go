package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logfacade/internal/domain/error"
	"github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/config"
)

// DatabaseConnector opens the connection used by the database sink
type DatabaseConnector func(*database.Config) (*database.Connection, error)

// Factory builds the configured set of sinks
type Factory struct {
	development  bool
	defaultLevel entity.LogLevel
	connectDB    DatabaseConnector
	consoleOpts  []ConsoleOption
}

// FactoryOption configures a Factory
type FactoryOption func(*Factory)

// WithDatabaseConnector replaces the function that opens database connections
func WithDatabaseConnector(connect DatabaseConnector) FactoryOption {
	return func(f *Factory) {
		f.connectDB = connect
	}
}

// WithConsoleOptions passes options to the console sink
func WithConsoleOptions(opts ...ConsoleOption) FactoryOption {
	return func(f *Factory) {
		f.consoleOpts = append(f.consoleOpts, opts...)
	}
}

// NewFactory creates a factory. Sinks without their own level use defaultLevel.
func NewFactory(development bool, defaultLevel entity.LogLevel, opts ...FactoryOption) *Factory {
	f := &Factory{
		development:  development,
		defaultLevel: defaultLevel,
		connectDB:    database.NewConnection,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set is the result of Factory.Build
type Set struct {
	Sinks []core.Sink
	// Memory is the in-memory sink, nil when disabled
	Memory *MemorySink
}

// Close closes every sink that holds resources
func (s *Set) Close() error {
	var errs []error
	for _, sk := range s.Sinks {
		if c, ok := sk.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", sinkName(sk), err))
			}
		}
	}
	return errors.Join(errs...)
}

// Build creates every enabled sink. On error, sinks built so far are closed.
// When nothing is enabled the set holds a single NoopSink.
func (f *Factory) Build(cfg config.SinksConfig) (*Set, error) {
	set := &Set{}
	if err := f.build(cfg, set); err != nil {
		_ = set.Close()
		return nil, err
	}
	if len(set.Sinks) == 0 {
		set.Sinks = append(set.Sinks, NewNoopSink())
	}
	return set, nil
}

func (f *Factory) build(cfg config.SinksConfig, set *Set) error {
	if cfg.Console.Enabled {
		level, err := f.level("console", cfg.Console.Level)
		if err != nil {
			return err
		}
		set.Sinks = append(set.Sinks, NewConsoleSink(f.development, level, f.consoleOpts...))
	}

	if cfg.File.Enabled {
		level, err := f.level("file", cfg.File.Level)
		if err != nil {
			return err
		}
		if cfg.File.Path == "" {
			return fmt.Errorf("%w: file sink path is required", domainerr.ErrInvalidSinkConfig)
		}
		set.Sinks = append(set.Sinks, NewFileSink(cfg.File, level))
	}

	if cfg.Database.Enabled {
		level, err := f.level("database", cfg.Database.Level)
		if err != nil {
			return err
		}
		conn, err := f.connectDB(database.FromSinkConfig(cfg.Database))
		if err != nil {
			return fmt.Errorf("%w: database: %w", domainerr.ErrSinkUnavailable, err)
		}
		if err := conn.Migrate(); err != nil {
			_ = conn.Close()
			return fmt.Errorf("%w: database: %w", domainerr.ErrSinkUnavailable, err)
		}
		set.Sinks = append(set.Sinks, NewLevelFilter(NewDatabaseSinkFromConnection(conn), level))
	}

	if cfg.Redis.Enabled {
		level, err := f.level("redis", cfg.Redis.Level)
		if err != nil {
			return err
		}
		redisSink, err := f.buildRedis(cfg.Redis)
		if err != nil {
			return err
		}
		set.Sinks = append(set.Sinks, NewLevelFilter(redisSink, level))
	}

	if cfg.Memory.Enabled {
		set.Memory = NewMemorySink(cfg.Memory.Capacity)
		set.Sinks = append(set.Sinks, NewLevelFilter(set.Memory, f.defaultLevel))
	}

	return nil
}

func (f *Factory) buildRedis(cfg config.RedisSinkConfig) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout(cfg))
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis %s: %w", domainerr.ErrSinkUnavailable, cfg.Addr, err)
	}

	s, err := NewRedisSink(client, RedisSinkOptions{
		Key:           cfg.Key,
		MaxLen:        cfg.MaxLen,
		Timeout:       cfg.Timeout,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return s, nil
}

// level resolves a per-sink level; empty means the factory default
func (f *Factory) level(name, raw string) (entity.LogLevel, error) {
	if raw == "" {
		return f.defaultLevel, nil
	}
	level, ok := entity.ParseLogLevel(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s sink level %q", domainerr.ErrInvalidSinkConfig, name, raw)
	}
	return level, nil
}

func pingTimeout(cfg config.RedisSinkConfig) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return time.Second
}
