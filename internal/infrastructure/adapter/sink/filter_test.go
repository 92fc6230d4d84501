package sink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	mockcore "github.com/amirhossein-jamali/logfacade/mocks/port/core"
)

func TestLevelFilter(t *testing.T) {
	next := mockcore.NewMockSink(t)
	next.EXPECT().Write(mock.MatchedBy(func(r entity.LogRecord) bool {
		return r.Level >= entity.LogLevelWarn
	})).Return(nil).Twice()
	next.EXPECT().Flush().Return(errors.New("flush failed")).Once()

	f := NewLevelFilter(next, entity.LogLevelWarn)

	assert.NoError(t, f.Write(testRecord(entity.LogLevelDebug, "d", nil)))
	assert.NoError(t, f.Write(testRecord(entity.LogLevelInfo, "i", nil)))
	assert.NoError(t, f.Write(testRecord(entity.LogLevelWarn, "w", nil)))
	assert.NoError(t, f.Write(testRecord(entity.LogLevelError, "e", nil)))
	assert.EqualError(t, f.Flush(), "flush failed")
}

func TestLevelFilter_NameAndClose(t *testing.T) {
	mem := NewMemorySink(1)
	f := NewLevelFilter(mem, entity.LogLevelInfo)

	assert.Equal(t, "memory", f.Name())
	assert.NoError(t, f.Close())

	anonymous := NewLevelFilter(mockcore.NewMockSink(t), entity.LogLevelInfo)
	assert.Equal(t, "sink", anonymous.Name())
}
