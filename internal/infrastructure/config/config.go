package config

import "time"

// Config holds all configuration for the service
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	Logger      LoggerConfig `mapstructure:"logger"`
	Sinks       SinksConfig  `mapstructure:"sinks"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggerConfig holds explicit logger settings. Empty fields are resolved
// from LOG_LEVEL, SERVICE_NAME, NODE_ENV, LOG_LANG and LOG_FORMAT.
type LoggerConfig struct {
	Level        string `mapstructure:"level"`
	Service      string `mapstructure:"service"`
	Environment  string `mapstructure:"environment"`
	Language     string `mapstructure:"language"`
	OutputFormat string `mapstructure:"outputFormat"`
}

// SinksConfig selects and configures the sinks records are written to
type SinksConfig struct {
	Console  ConsoleSinkConfig  `mapstructure:"console"`
	File     FileSinkConfig     `mapstructure:"file"`
	Database DatabaseSinkConfig `mapstructure:"database"`
	Redis    RedisSinkConfig    `mapstructure:"redis"`
	Memory   MemorySinkConfig   `mapstructure:"memory"`
}

// ConsoleSinkConfig configures the stdout/stderr sink
type ConsoleSinkConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
}

// FileSinkConfig configures the rotating file sink
type FileSinkConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Level      string `mapstructure:"level"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
	MaxBackups int    `mapstructure:"maxBackups"`
	Compress   bool   `mapstructure:"compress"`
}

// DatabaseSinkConfig configures the sink that stores records in a SQL table
type DatabaseSinkConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Level           string        `mapstructure:"level"`
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // milliseconds
}

// RedisSinkConfig configures the sink that pushes records onto a redis list
type RedisSinkConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Level         string        `mapstructure:"level"`
	Addr          string        `mapstructure:"addr"`
	Password      string        `mapstructure:"password"`
	DB            int           `mapstructure:"db"`
	Key           string        `mapstructure:"key"`
	MaxLen        int64         `mapstructure:"maxLen"`
	Timeout       time.Duration `mapstructure:"timeout"` // milliseconds
	RetryAttempts int           `mapstructure:"retryAttempts"`
	RetryDelay    time.Duration `mapstructure:"retryDelay"` // milliseconds
}

// MemorySinkConfig configures the in-memory sink behind GET /logs/recent
type MemorySinkConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Capacity int  `mapstructure:"capacity"`
}
