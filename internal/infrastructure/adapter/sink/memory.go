package sink

import (
	"sync"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// DefaultMemoryCapacity bounds a MemorySink created with a non-positive capacity
const DefaultMemoryCapacity = 200

// MemorySink keeps the most recent records in a ring buffer
type MemorySink struct {
	mu       sync.RWMutex
	records  []entity.LogRecord
	next     int
	full     bool
	capacity int
}

// NewMemorySink creates a memory sink holding up to capacity records
func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemorySink{
		records:  make([]entity.LogRecord, capacity),
		capacity: capacity,
	}
}

// Name identifies the sink in error reports
func (s *MemorySink) Name() string { return "memory" }

// Write stores record, evicting the oldest one when full
func (s *MemorySink) Write(record entity.LogRecord) error {
	record.Metadata = copyMetadata(record.Metadata)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[s.next] = record
	s.next = (s.next + 1) % s.capacity
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// Flush is a no-op
func (s *MemorySink) Flush() error { return nil }

// Records returns the stored records, oldest first
func (s *MemorySink) Records() []entity.LogRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full {
		return append([]entity.LogRecord(nil), s.records[:s.next]...)
	}
	out := make([]entity.LogRecord, 0, s.capacity)
	out = append(out, s.records[s.next:]...)
	return append(out, s.records[:s.next]...)
}

// Recent returns up to n of the newest records, oldest first
func (s *MemorySink) Recent(n int) []entity.LogRecord {
	all := s.Records()
	if n <= 0 || n >= len(all) {
		return all
	}
	return all[len(all)-n:]
}

// Len returns the number of stored records
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return s.capacity
	}
	return s.next
}

// Reset drops every stored record
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]entity.LogRecord, s.capacity)
	s.next = 0
	s.full = false
}

func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
