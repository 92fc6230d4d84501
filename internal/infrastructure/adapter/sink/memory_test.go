package sink

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

func TestMemorySink_KeepsNewest(t *testing.T) {
	s := NewMemorySink(3)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Write(testRecord(entity.LogLevelInfo, fmt.Sprintf("m%d", i), nil)))
	}

	records := s.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "m2", records[0].Message)
	assert.Equal(t, "m4", records[2].Message)
	assert.Equal(t, 3, s.Len())

	recent := s.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "m3", recent[0].Message)
	assert.Equal(t, "m4", recent[1].Message)
}

func TestMemorySink_PartiallyFilled(t *testing.T) {
	s := NewMemorySink(10)
	require.NoError(t, s.Write(testRecord(entity.LogLevelInfo, "only", nil)))

	assert.Len(t, s.Records(), 1)
	assert.Len(t, s.Recent(5), 1)

	s.Reset()
	assert.Empty(t, s.Records())
	assert.Equal(t, 0, s.Len())
}

func TestMemorySink_CopiesMetadata(t *testing.T) {
	s := NewMemorySink(1)
	meta := map[string]any{"k": "v"}
	require.NoError(t, s.Write(testRecord(entity.LogLevelInfo, "m", meta)))

	meta["k"] = "changed"
	assert.Equal(t, "v", s.Records()[0].Metadata["k"])
}

func TestMemorySink_DefaultCapacity(t *testing.T) {
	s := NewMemorySink(0)
	assert.Equal(t, DefaultMemoryCapacity, s.capacity)
}

func TestMemorySink_Concurrent(t *testing.T) {
	s := NewMemorySink(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Write(testRecord(entity.LogLevelInfo, fmt.Sprintf("m%d", i), nil))
			_ = s.Records()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

func TestNoopSink(t *testing.T) {
	s := NewNoopSink()
	assert.NoError(t, s.Write(testRecord(entity.LogLevelError, "gone", nil)))
	assert.NoError(t, s.Flush())
	assert.Equal(t, "noop", s.Name())
}
