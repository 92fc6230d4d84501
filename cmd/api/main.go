package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/amirhossein-jamali/logfacade/internal/domain/usecase/logging"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/sink"
	timeProvider "github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/config"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/i18n"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/xmlproc"
)

// Translation keys used during startup and shutdown
const (
	msgServerStarting = "server.starting"
	msgServerStopping = "server.stopping"
	msgServerStopped  = "server.stopped"
	msgServerFailed   = "server.failed"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Resolve the logger configuration: explicit file values, then LOG_* variables, then defaults
	loggerCfg := config.NewResolver(config.NewViperEnv()).Resolve(cfg.Logger.Overrides())

	if loggerCfg.Environment == entity.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	translator, err := i18n.NewTranslator()
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	if !slices.Contains(translator.Languages(), loggerCfg.Language) {
		log.Fatalf("No translation table for language %q (loaded: %v)", loggerCfg.Language, translator.Languages())
	}

	sinks, err := sink.NewFactory(loggerCfg.IsDevelopment, loggerCfg.Level).Build(cfg.Sinks)
	if err != nil {
		log.Fatalf("Failed to build sinks: %v", err)
	}
	defer func() {
		if err := sinks.Close(); err != nil {
			log.Printf("Failed to close sinks: %v", err)
		}
	}()

	tp := timeProvider.NewRealTimeProvider()
	xmlProcessor := xmlproc.NewProcessor()

	appLogger := logging.NewLogger(loggerCfg, translator, xmlProcessor, tp, logging.WithSinks(sinks.Sinks...))

	// A nil *MemorySink must not reach the handler as a non-nil interface
	var recent handler.RecentRecords
	if sinks.Memory != nil {
		recent = sinks.Memory
	}

	healthHandler := handler.NewHealthHandler(appLogger)
	logHandler := handler.NewLogHandler(appLogger, recent)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, middleware.RequestLoggerOptions{
		SkipPaths: []string{"/health"},
	})
	routes.SetupRoutes(router, healthHandler, logHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.LogI18n(entity.LogLevelInfo, msgServerStarting, map[string]any{"port": cfg.Server.Port}, map[string]any{
			"env":     string(loggerCfg.Environment),
			"service": loggerCfg.Service,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.LogI18n(entity.LogLevelError, msgServerFailed, map[string]any{"reason": err.Error()}, nil)
		_ = appLogger.Flush()
		return
	}

	appLogger.LogI18n(entity.LogLevelInfo, msgServerStopping, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err, nil)
	}

	appLogger.LogI18n(entity.LogLevelInfo, msgServerStopped, nil, nil)

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logs: %v", err)
	}
}

// validateConfig ensures the server settings needed to start are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Sinks.Database.Enabled {
		if cfg.Sinks.Database.Host == "" {
			missingConfigs = append(missingConfigs, "sinks.database.host (or LF_DB_HOST environment variable)")
		}
		if cfg.Sinks.Database.Database == "" {
			missingConfigs = append(missingConfigs, "sinks.database.database (or LF_DB_NAME environment variable)")
		}
	}

	if cfg.Sinks.Redis.Enabled && cfg.Sinks.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "sinks.redis.addr (or LF_REDIS_ADDR environment variable)")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production && cfg.Sinks.Database.Enabled && cfg.Sinks.Database.SSLMode == "disable" {
		log.Printf("Warning: sinks.database.sslMode is disabled in production")
	}

	return nil
}
