package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/dto"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger coreport.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	cfg := h.logger.Config()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "ok",
		Service:     cfg.Service,
		Environment: string(cfg.Environment),
		Language:    string(cfg.Language),
	})
}
