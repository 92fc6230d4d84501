package sink

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logfacade/internal/domain/error"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/model"
)

// DatabaseSink inserts each record as a row of the log_records table
type DatabaseSink struct {
	db           *gorm.DB
	queryTimeout time.Duration
	retry        database.RetryConfig
	closer       func() error
}

// NewDatabaseSink creates a sink writing through db. Transient insert
// failures are retried according to retryCfg.
func NewDatabaseSink(db *gorm.DB, queryTimeout time.Duration, retryCfg database.RetryConfig) *DatabaseSink {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &DatabaseSink{
		db:           db,
		queryTimeout: queryTimeout,
		retry:        retryCfg,
	}
}

// NewDatabaseSinkFromConnection creates a sink that owns conn and closes it on Close
func NewDatabaseSinkFromConnection(conn *database.Connection) *DatabaseSink {
	s := NewDatabaseSink(conn.DB, conn.Config.QueryTimeout, conn.Config.Retry)
	s.closer = conn.Close
	return s
}

// Name identifies the sink in error reports
func (s *DatabaseSink) Name() string { return "database" }

// Write inserts record
func (s *DatabaseSink) Write(record entity.LogRecord) error {
	row, err := model.FromEntity(record)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	err = database.RetryOnTransientError(ctx, s.retry, func() error {
		row.ID = 0
		return s.db.WithContext(ctx).Create(row).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domainerr.ErrSinkUnavailable, err)
	}
	return nil
}

// Flush is a no-op; every Write is committed before it returns
func (s *DatabaseSink) Flush() error { return nil }

// Close releases the connection when the sink owns it
func (s *DatabaseSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
