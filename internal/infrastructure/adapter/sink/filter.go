package sink

import (
	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
)

// LevelFilter forwards only records at or above a minimum level
type LevelFilter struct {
	next     core.Sink
	minLevel entity.LogLevel
}

// NewLevelFilter wraps next with a minimum level
func NewLevelFilter(next core.Sink, minLevel entity.LogLevel) *LevelFilter {
	return &LevelFilter{next: next, minLevel: minLevel}
}

// Name reports the wrapped sink's name
func (f *LevelFilter) Name() string {
	return sinkName(f.next)
}

// Write forwards record when its level passes the threshold
func (f *LevelFilter) Write(record entity.LogRecord) error {
	if !f.minLevel.Enabled(record.Level) {
		return nil
	}
	return f.next.Write(record)
}

// Flush flushes the wrapped sink
func (f *LevelFilter) Flush() error {
	return f.next.Flush()
}

// Close closes the wrapped sink if it holds resources
func (f *LevelFilter) Close() error {
	if c, ok := f.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func sinkName(s core.Sink) string {
	if named, ok := s.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "sink"
}
