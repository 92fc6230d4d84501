package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "debug", LogLevelDebug.String())
	assert.Equal(t, "info", LogLevelInfo.String())
	assert.Equal(t, "warn", LogLevelWarn.String())
	assert.Equal(t, "error", LogLevelError.String())
	assert.Equal(t, "unknown", LogLevel(42).String())
}

func TestLogLevelOrdering(t *testing.T) {
	assert.True(t, LogLevelError > LogLevelWarn)
	assert.True(t, LogLevelWarn > LogLevelInfo)
	assert.True(t, LogLevelInfo > LogLevelDebug)

	assert.True(t, LogLevelWarn.Enabled(LogLevelError))
	assert.True(t, LogLevelWarn.Enabled(LogLevelWarn))
	assert.False(t, LogLevelWarn.Enabled(LogLevelInfo))
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"debug", LogLevelDebug, true},
		{"INFO", LogLevelInfo, true},
		{" Warn ", LogLevelWarn, true},
		{"error", LogLevelError, true},
		{"warning", LogLevelInfo, false},
		{"", LogLevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, ok := ParseLogLevel(tc.input)
			assert.Equal(t, tc.expected, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
