package sink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/database"
)

// newDryRunDB returns a gorm handle that builds statements without
// touching a server
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestDatabaseSink_Write(t *testing.T) {
	s := NewDatabaseSink(newDryRunDB(t), time.Second, database.DefaultRetryConfig())

	err := s.Write(testRecord(entity.LogLevelError, "db down", map[string]any{
		entity.KeyErrorCode: "DB_001",
	}))

	assert.NoError(t, err)
	assert.NoError(t, s.Flush())
	assert.NoError(t, s.Close())
	assert.Equal(t, "database", s.Name())
}

func TestDatabaseSink_RejectsBadRecord(t *testing.T) {
	s := NewDatabaseSink(newDryRunDB(t), time.Second, database.DefaultRetryConfig())

	rec := testRecord(entity.LogLevelInfo, "m", nil)
	rec.Timestamp = "not a timestamp"

	assert.Error(t, s.Write(rec))
}
