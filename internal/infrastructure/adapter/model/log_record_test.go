package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

func TestFromEntity(t *testing.T) {
	record := entity.LogRecord{
		Timestamp: "2024-03-09 14:05:07",
		Service:   "billing",
		Level:     entity.LogLevelWarn,
		Message:   "not found",
		Metadata: map[string]any{
			entity.KeyHTTPStatus: 404,
			entity.KeyErrorCode:  "AUTH_001",
			"userId":             "u-1",
		},
	}

	row, err := FromEntity(record)
	require.NoError(t, err)

	assert.Equal(t, "billing", row.Service)
	assert.Equal(t, "warn", row.Level)
	assert.Equal(t, "not found", row.Message)
	assert.Equal(t, time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC), row.LoggedAt)
	require.NotNil(t, row.HTTPStatus)
	assert.Equal(t, 404, *row.HTTPStatus)
	assert.Equal(t, "AUTH_001", row.ErrorCode)

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(row.Metadata), &meta))
	assert.Equal(t, "u-1", meta["userId"])
	assert.Equal(t, float64(404), meta[entity.KeyHTTPStatus])
}

func TestFromEntity_NoMetadata(t *testing.T) {
	row, err := FromEntity(entity.LogRecord{
		Timestamp: "2024-01-01 00:00:00",
		Level:     entity.LogLevelInfo,
		Message:   "hi",
	})
	require.NoError(t, err)

	assert.Empty(t, row.Metadata)
	assert.Nil(t, row.HTTPStatus)
	assert.Empty(t, row.ErrorCode)
}

func TestFromEntity_BadTimestamp(t *testing.T) {
	_, err := FromEntity(entity.LogRecord{Timestamp: "yesterday"})
	assert.Error(t, err)
}

func TestLogRecord_TableName(t *testing.T) {
	assert.Equal(t, "log_records", LogRecord{}.TableName())
}
