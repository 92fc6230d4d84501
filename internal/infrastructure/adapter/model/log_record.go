package model

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// LogRecord represents the database model for a persisted log record
type LogRecord struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Service    string    `gorm:"not null;size:255;index"`
	Level      string    `gorm:"not null;size:10;index"`
	Message    string    `gorm:"type:text;not null"`
	Stack      string    `gorm:"type:text"`
	Metadata   string    `gorm:"type:text"`
	HTTPStatus *int      `gorm:"index"`
	ErrorCode  string    `gorm:"size:20;index"`
	LoggedAt   time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for LogRecord
func (LogRecord) TableName() string {
	return "log_records"
}

// FromEntity maps a domain record to its row. Metadata is stored as JSON
// text; httpStatus and errorCode are copied into their own columns when
// present so they can be indexed.
func FromEntity(r entity.LogRecord) (*LogRecord, error) {
	loggedAt, err := time.ParseInLocation(entity.TimestampLayout, r.Timestamp, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid record timestamp %q: %w", r.Timestamp, err)
	}

	row := &LogRecord{
		Service:  r.Service,
		Level:    r.Level.String(),
		Message:  r.Message,
		Stack:    r.Stack,
		LoggedAt: loggedAt,
	}

	if len(r.Metadata) > 0 {
		data, err := json.Marshal(r.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata: %w", err)
		}
		row.Metadata = string(data)
	}

	if status, ok := r.Metadata[entity.KeyHTTPStatus].(int); ok {
		row.HTTPStatus = &status
	}
	if code, ok := r.Metadata[entity.KeyErrorCode].(string); ok {
		row.ErrorCode = code
	}

	return row, nil
}
