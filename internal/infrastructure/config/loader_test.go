package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LF_ENV", "unit")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "unit", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.True(t, cfg.Sinks.Console.Enabled)
	assert.False(t, cfg.Sinks.File.Enabled)
	assert.Equal(t, 20, cfg.Sinks.File.MaxSizeMB)
	assert.Equal(t, 14, cfg.Sinks.File.MaxAgeDays)
	assert.True(t, cfg.Sinks.File.Compress)

	assert.Equal(t, "postgres", cfg.Sinks.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Sinks.Database.QueryTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Sinks.Database.RetryDelay)

	assert.Equal(t, "logfacade:records", cfg.Sinks.Redis.Key)
	assert.Equal(t, 500*time.Millisecond, cfg.Sinks.Redis.Timeout)
	assert.Equal(t, 200, cfg.Sinks.Memory.Capacity)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LF_ENV", "unit")
	t.Setenv("LF_SERVER_PORT", "9090")
	t.Setenv("LF_SINKS_FILE_ENABLED", "true")
	t.Setenv("LF_SINKS_FILE_PATH", "/tmp/facade.log")
	t.Setenv("LF_LOGGER_SERVICE", "orders")
	t.Setenv("LF_DB_HOST", "db.internal")
	t.Setenv("LF_REDIS_ADDR", "cache:6380")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Sinks.File.Enabled)
	assert.Equal(t, "/tmp/facade.log", cfg.Sinks.File.Path)
	assert.Equal(t, "orders", cfg.Logger.Service)
	assert.Equal(t, "db.internal", cfg.Sinks.Database.Host)
	assert.Equal(t, "cache:6380", cfg.Sinks.Redis.Addr)
}

func TestLoggerConfig_Overrides(t *testing.T) {
	o := LoggerConfig{
		Level:        "ERROR",
		Service:      "svc",
		Environment:  "Production",
		Language:     "ES",
		OutputFormat: "XML",
	}.Overrides()

	require.NotNil(t, o.Level)
	assert.Equal(t, entity.LogLevelError, *o.Level)
	assert.Equal(t, "svc", o.Service)
	assert.Equal(t, entity.EnvironmentProduction, o.Environment)
	assert.Equal(t, entity.LanguageES, o.Language)
	assert.Equal(t, entity.OutputFormatXML, o.OutputFormat)

	empty := LoggerConfig{Level: "loud"}.Overrides()
	assert.Nil(t, empty.Level)

	cfg := NewResolver(MapEnv{}).Resolve(empty)
	assert.Equal(t, entity.DefaultEffectiveConfig(), cfg)
}

func TestLoadConfig_ShippedFilesDeferToLogEnv(t *testing.T) {
	for _, env := range []string{Development, Production} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("LF_ENV", env)
			t.Setenv("LOG_LEVEL", "debug")
			t.Setenv("SERVICE_NAME", "billing")
			t.Setenv("NODE_ENV", "testing")
			t.Setenv("LOG_LANG", "es")
			t.Setenv("LOG_FORMAT", "xml")

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, LoggerConfig{}, cfg.Logger)

			resolved := NewResolver(NewViperEnv()).Resolve(cfg.Logger.Overrides())
			assert.Equal(t, entity.LogLevelDebug, resolved.Level)
			assert.Equal(t, "billing", resolved.Service)
			assert.Equal(t, entity.EnvironmentTesting, resolved.Environment)
			assert.Equal(t, entity.LanguageES, resolved.Language)
			assert.Equal(t, entity.OutputFormatXML, resolved.OutputFormat)
		})
	}
}

func TestLoadConfig_ExplicitLoggerSettingsWin(t *testing.T) {
	t.Setenv("LF_ENV", "unit")
	t.Setenv("LF_LOGGER_LEVEL", "error")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	resolved := NewResolver(NewViperEnv()).Resolve(cfg.Logger.Overrides())
	assert.Equal(t, entity.LogLevelError, resolved.Level)
}
