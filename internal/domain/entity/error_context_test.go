package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorContextLogFields(t *testing.T) {
	t.Run("Only populated fields", func(t *testing.T) {
		ctx := ErrorContext{Component: "user-service", Operation: "getUserById"}

		assert.Equal(t, map[string]any{
			"component": "user-service",
			"operation": "getUserById",
		}, ctx.LogFields())
	})

	t.Run("All fields and extras", func(t *testing.T) {
		ctx := ErrorContext{
			UserID:        123,
			RequestID:     "req-1",
			CorrelationID: "corr-1",
			Component:     "x",
			Operation:     "y",
			HTTPStatus:    StatusConflict,
			Extra:         map[string]any{"attempt": 2},
		}

		fields := ctx.LogFields()
		assert.Equal(t, 123, fields["userId"])
		assert.Equal(t, "req-1", fields["requestId"])
		assert.Equal(t, "corr-1", fields["correlationId"])
		assert.Equal(t, 409, fields[KeyHTTPStatus])
		assert.Equal(t, 2, fields["attempt"])
	})

	t.Run("Empty context", func(t *testing.T) {
		assert.Empty(t, ErrorContext{}.LogFields())
	})
}
