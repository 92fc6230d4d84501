package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every service-level environment variable
const EnvPrefix = "LF"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads the service configuration. Values come from, in
// increasing priority: defaults, configs/<env>.yaml (optional), LF_*
// environment variables (after .env files are loaded).
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Overrides converts the explicit logger settings into resolver overrides.
// Unparsable values are left unset so the resolver falls back.
func (c LoggerConfig) Overrides() entity.Overrides {
	o := entity.Overrides{
		Service:      c.Service,
		Environment:  entity.Environment(strings.ToLower(c.Environment)),
		Language:     entity.Language(strings.ToLower(c.Language)),
		OutputFormat: entity.OutputFormat(strings.ToLower(c.OutputFormat)),
	}
	if level, ok := entity.ParseLogLevel(c.Level); ok {
		o.Level = entity.LevelOverride(level)
	}
	return o
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every key so AutomaticEnv can see them
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.service", "")
	v.SetDefault("logger.environment", "")
	v.SetDefault("logger.language", "")
	v.SetDefault("logger.outputFormat", "")

	v.SetDefault("sinks.console.enabled", true)
	v.SetDefault("sinks.console.level", "")

	v.SetDefault("sinks.file.enabled", false)
	v.SetDefault("sinks.file.level", "")
	v.SetDefault("sinks.file.path", "logs/app.log")
	v.SetDefault("sinks.file.maxSizeMB", 20)
	v.SetDefault("sinks.file.maxAgeDays", 14)
	v.SetDefault("sinks.file.maxBackups", 0)
	v.SetDefault("sinks.file.compress", true)

	v.SetDefault("sinks.database.enabled", false)
	v.SetDefault("sinks.database.level", "warn")
	v.SetDefault("sinks.database.driver", "postgres")
	v.SetDefault("sinks.database.host", "")
	v.SetDefault("sinks.database.port", 5432)
	v.SetDefault("sinks.database.username", "")
	v.SetDefault("sinks.database.password", "")
	v.SetDefault("sinks.database.database", "")
	v.SetDefault("sinks.database.sslMode", "disable")
	v.SetDefault("sinks.database.maxOpenConns", 10)
	v.SetDefault("sinks.database.maxIdleConns", 5)
	v.SetDefault("sinks.database.connMaxLifetime", 30) // minutes
	v.SetDefault("sinks.database.queryTimeout", 5)     // seconds
	v.SetDefault("sinks.database.retryAttempts", 3)
	v.SetDefault("sinks.database.retryDelay", 100) // milliseconds

	v.SetDefault("sinks.redis.enabled", false)
	v.SetDefault("sinks.redis.level", "")
	v.SetDefault("sinks.redis.addr", "localhost:6379")
	v.SetDefault("sinks.redis.password", "")
	v.SetDefault("sinks.redis.db", 0)
	v.SetDefault("sinks.redis.key", "logfacade:records")
	v.SetDefault("sinks.redis.maxLen", 10000)
	v.SetDefault("sinks.redis.timeout", 500) // milliseconds
	v.SetDefault("sinks.redis.retryAttempts", 3)
	v.SetDefault("sinks.redis.retryDelay", 50) // milliseconds

	v.SetDefault("sinks.memory.enabled", true)
	v.SetDefault("sinks.memory.capacity", 200)
}

// getEnvironment determines the environment from LF_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the short-form variables for secrets and
// connection endpoints over file values
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("LF_DB_HOST"); dbHost != "" {
		v.Set("sinks.database.host", dbHost)
	}
	if dbPort := getEnvInt("LF_DB_PORT", 0); dbPort > 0 {
		v.Set("sinks.database.port", dbPort)
	}
	if dbUser := os.Getenv("LF_DB_USERNAME"); dbUser != "" {
		v.Set("sinks.database.username", dbUser)
	}
	if dbPass := os.Getenv("LF_DB_PASSWORD"); dbPass != "" {
		v.Set("sinks.database.password", dbPass)
	}
	if dbName := os.Getenv("LF_DB_NAME"); dbName != "" {
		v.Set("sinks.database.database", dbName)
	}

	if redisAddr := os.Getenv("LF_REDIS_ADDR"); redisAddr != "" {
		v.Set("sinks.redis.addr", redisAddr)
	}
	if redisPass := os.Getenv("LF_REDIS_PASSWORD"); redisPass != "" {
		v.Set("sinks.redis.password", redisPass)
	}

	if serverPort := getEnvInt("LF_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}
}

// getEnvInt returns the integer value of an environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw numbers decoded into duration fields
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Sinks.Database.ConnMaxLifetime = config.Sinks.Database.ConnMaxLifetime * time.Minute
	config.Sinks.Database.QueryTimeout = config.Sinks.Database.QueryTimeout * time.Second
	config.Sinks.Database.RetryDelay = config.Sinks.Database.RetryDelay * time.Millisecond

	config.Sinks.Redis.Timeout = config.Sinks.Redis.Timeout * time.Millisecond
	config.Sinks.Redis.RetryDelay = config.Sinks.Redis.RetryDelay * time.Millisecond
}
