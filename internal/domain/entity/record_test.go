package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 9, 14, 5, 7, 999_000_000, loc)

	assert.Equal(t, "2024-03-09 12:05:07", FormatTimestamp(ts))
}

func TestLogRecordFields(t *testing.T) {
	record := LogRecord{
		Timestamp: "2024-03-09 12:05:07",
		Service:   "billing",
		Level:     LogLevelWarn,
		Message:   "slow query",
		Metadata: map[string]any{
			"userId":  1,
			"message": "caller value",
		},
	}

	fields := record.Fields()

	assert.Equal(t, "2024-03-09 12:05:07", fields["timestamp"])
	assert.Equal(t, "billing", fields["service"])
	assert.Equal(t, "warn", fields["level"])
	assert.Equal(t, "slow query", fields["message"])
	assert.Equal(t, 1, fields["userId"])
	assert.NotContains(t, fields, KeyStack)
}

func TestLogRecordFieldsWithStack(t *testing.T) {
	record := LogRecord{Level: LogLevelError, Stack: "main.go:10"}

	assert.Equal(t, "main.go:10", record.Fields()[KeyStack])
}
