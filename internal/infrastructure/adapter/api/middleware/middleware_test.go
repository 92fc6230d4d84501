package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/amirhossein-jamali/logfacade/internal/domain/usecase/logging"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/sink"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/i18n"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/xmlproc"
	mockcore "github.com/amirhossein-jamali/logfacade/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestClock(t *testing.T) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(25 * time.Millisecond).Maybe()
	return clock
}

func newTestLogger(t *testing.T) (*logging.Logger, *sink.MemorySink, *mockcore.MockTimeProvider) {
	t.Helper()
	translator, err := i18n.NewTranslator()
	require.NoError(t, err)

	clock := newTestClock(t)
	mem := sink.NewMemorySink(100)
	cfg := entity.DefaultEffectiveConfig()
	cfg.Service = "api"

	logger := logging.NewLogger(cfg, translator, xmlproc.NewProcessor(), clock, logging.WithSinks(mem))
	return logger, mem, clock
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_Success(t *testing.T) {
	logger, mem, clock := newTestLogger(t)
	r := newRouter(RequestID(), Logger(logger, clock))

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	records := mem.Records()
	require.Len(t, records, 2)

	incoming := records[0]
	assert.Equal(t, entity.LogLevelInfo, incoming.Level)
	assert.Equal(t, "Incoming request", incoming.Message)
	assert.Equal(t, "GET", incoming.Metadata[entity.KeyMethod])
	assert.Equal(t, "/ping?x=1", incoming.Metadata[entity.KeyURL])
	assert.Equal(t, "req-1", incoming.Metadata["requestId"])

	done := records[1]
	assert.Equal(t, entity.LogLevelInfo, done.Level)
	assert.Equal(t, "Request completed successfully", done.Message)
	assert.Equal(t, 200, done.Metadata[entity.KeyStatusCode])
	assert.Equal(t, int64(25), done.Metadata[entity.KeyDuration])
	assert.Equal(t, "api", done.Service)
}

func TestRequestLogger_ErrorStatuses(t *testing.T) {
	testCases := []struct {
		path          string
		status        int
		expectedLevel entity.LogLevel
	}{
		{"/missing", http.StatusNotFound, entity.LogLevelWarn},
		{"/broken", http.StatusServiceUnavailable, entity.LogLevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			logger, mem, clock := newTestLogger(t)
			r := newRouter(Logger(logger, clock))

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			records := mem.Records()
			require.Len(t, records, 2)
			assert.Equal(t, tc.expectedLevel, records[1].Level)
			assert.Equal(t, "Request completed with error", records[1].Message)
			assert.Equal(t, tc.status, records[1].Metadata[entity.KeyStatusCode])
		})
	}
}

func TestRequestLogger_SkipPaths(t *testing.T) {
	logger, mem, clock := newTestLogger(t)
	r := newRouter(RequestLogger(logger, clock, RequestLoggerOptions{SkipPaths: []string{"/ping"}}))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Empty(t, mem.Records())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Len(t, mem.Records(), 2)
}

func TestRequestLogger_SkipSuccessful(t *testing.T) {
	logger, mem, clock := newTestLogger(t)
	r := newRouter(RequestLogger(logger, clock, RequestLoggerOptions{SkipSuccessful: true}))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Len(t, mem.Records(), 1)
	assert.Equal(t, "Incoming request", mem.Records()[0].Message)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Len(t, mem.Records(), 3)
}

func TestRequestLogger_HeadersAndBody(t *testing.T) {
	logger, mem, clock := newTestLogger(t)
	r := newRouter(RequestLogger(logger, clock, RequestLoggerOptions{LogHeaders: true, LogBody: true}))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, `{"a":1}`, w.Body.String(), "handler must still see the body")

	incoming := mem.Records()[0]
	headers, ok := incoming.Metadata["headers"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.Equal(t, `{"a":1}`, incoming.Metadata["body"])
}

func TestErrorHandler(t *testing.T) {
	logger, mem, clock := newTestLogger(t)
	r := newRouter(RequestID(), RequestLogger(logger, clock, RequestLoggerOptions{}), ErrorHandler(logger))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"message":"Internal server error"}`, w.Body.String())

	records := mem.Records()
	require.Len(t, records, 3)

	panicRecord := records[1]
	assert.Equal(t, entity.LogLevelError, panicRecord.Level)
	assert.Equal(t, "Panic recovered in API request", panicRecord.Message)
	assert.Equal(t, 500, panicRecord.Metadata[entity.KeyHTTPStatus])
	assert.Equal(t, "kaboom", panicRecord.Metadata[entity.KeyError])
	assert.NotEmpty(t, panicRecord.Metadata["requestId"])

	assert.Equal(t, entity.LogLevelError, records[2].Level)
	assert.Equal(t, 500, records[2].Metadata[entity.KeyStatusCode])
}
