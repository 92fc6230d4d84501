package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
	"github.com/amirhossein-jamali/logfacade/internal/domain/usecase/severity"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/middleware"
)

// MsgEventReceived is logged for events submitted without a message
const MsgEventReceived = "event.received"

const (
	defaultRecentLimit = 50
	maxXMLBodyBytes    = 1 << 20
)

// RecentRecords exposes the newest records kept by an in-memory sink
type RecentRecords interface {
	Recent(n int) []entity.LogRecord
	Reset()
}

// LogHandler handles the log ingestion endpoints
type LogHandler struct {
	logger coreport.Logger
	recent RecentRecords
}

// NewLogHandler creates a new log handler. recent may be nil, in which case
// GET /logs/recent answers 404.
func NewLogHandler(logger coreport.Logger, recent RecentRecords) *LogHandler {
	return &LogHandler{
		logger: logger,
		recent: recent,
	}
}

// LogXML handles POST /logs/xml. The body is either raw XML
// (application/xml or text/xml) or a JSON XMLLogRequest.
func (h *LogHandler) LogXML(c *gin.Context) {
	var req dto.XMLLogRequest

	if isXMLContent(c.ContentType()) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxXMLBodyBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Could not read request body",
			})
			return
		}
		req.XML = string(body)
		req.Level = c.Query("level")
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	level := entity.LogLevelInfo
	if req.Level != "" {
		parsed, ok := entity.ParseLogLevel(req.Level)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid level: " + req.Level,
			})
			return
		}
		level = parsed
	}

	metadata := withRequestID(c, req.Metadata)
	valid := h.logger.LogXML(req.XML, level, metadata)

	c.JSON(http.StatusAccepted, dto.XMLLogResponse{
		Accepted: true,
		Valid:    valid,
	})
}

// LogEvent handles POST /logs/events
func (h *LogHandler) LogEvent(c *gin.Context) {
	var req dto.EventLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	code := entity.ApplicationErrorCode(req.Code)
	message := req.Message
	if message == "" {
		message = MsgEventReceived
	}

	errCtx := entity.ErrorContext{
		UserID:        req.UserID,
		RequestID:     middleware.GetRequestID(c),
		CorrelationID: req.CorrelationID,
		Component:     req.Component,
		Operation:     req.Operation,
		HTTPStatus:    entity.HTTPStatusCode(req.HTTPStatus),
		Extra:         req.Extra,
	}

	h.logger.LogApplicationError(message, code, errCtx)

	c.JSON(http.StatusAccepted, dto.EventLogResponse{
		Accepted: true,
		Level:    severity.ClassifyAppError(code).String(),
	})
}

// Recent handles GET /logs/recent?limit=N
func (h *LogHandler) Recent(c *gin.Context) {
	if h.recent == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "In-memory sink is disabled",
		})
		return
	}

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit: " + raw,
			})
			return
		}
		limit = n
	}

	records := h.recent.Recent(limit)
	resp := dto.RecentLogsResponse{
		Count:   len(records),
		Records: make([]map[string]any, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, r.Fields())
	}

	c.JSON(http.StatusOK, resp)
}

// ClearRecent handles DELETE /logs/recent
func (h *LogHandler) ClearRecent(c *gin.Context) {
	if h.recent == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "In-memory sink is disabled",
		})
		return
	}

	h.recent.Reset()
	c.Status(http.StatusNoContent)
}

func isXMLContent(contentType string) bool {
	return strings.HasSuffix(contentType, "/xml") || strings.HasSuffix(contentType, "+xml")
}

func withRequestID(c *gin.Context, metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		out[k] = v
	}
	if id := middleware.GetRequestID(c); id != "" {
		out["requestId"] = id
	}
	return out
}
