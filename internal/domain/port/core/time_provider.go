package core

import (
	"time"
)

// TimeProvider abstracts clock access so record timestamps and request
// durations can be controlled in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
