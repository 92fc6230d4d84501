package sink

import "github.com/amirhossein-jamali/logfacade/internal/domain/entity"

// NoopSink discards every record. Factory.Build falls back to it when no
// sink is enabled.
type NoopSink struct{}

// NewNoopSink creates a new no-op sink
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

// Name identifies the sink in error reports
func (s *NoopSink) Name() string { return "noop" }

// Write discards record
func (s *NoopSink) Write(entity.LogRecord) error {
	return nil
}

// Flush has nothing to flush
func (s *NoopSink) Flush() error {
	return nil
}
