package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	logHandler *handler.LogHandler,
) {
	// GET /health
	router.GET("/health", healthHandler.Health)

	logRoutes := router.Group("/logs")
	{
		// POST /logs/xml
		logRoutes.POST("/xml", logHandler.LogXML)

		// POST /logs/events
		logRoutes.POST("/events", logHandler.LogEvent)

		// GET /logs/recent
		logRoutes.GET("/recent", logHandler.Recent)

		// DELETE /logs/recent
		logRoutes.DELETE("/recent", logHandler.ClearRecent)
	}
}

// SetupMiddlewares configures global middlewares for the API. The request
// logger wraps the error handler so recovered panics are logged as 500s.
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	clock coreport.TimeProvider,
	opts middleware.RequestLoggerOptions,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger, clock, opts))
	router.Use(middleware.ErrorHandler(logger))
}
