package middleware

import (
	"bytes"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
)

// Translation keys used by the request logger
const (
	MsgRequestIncoming  = "request.incoming"
	MsgRequestSucceeded = "request.completed.success"
	MsgRequestFailed    = "request.completed.error"
)

const defaultMaxBodyBytes = 4 << 10

var redactedHeaders = []string{"Authorization", "Cookie", "Set-Cookie", "X-Api-Key"}

// RequestLoggerOptions tunes what the request logger records
type RequestLoggerOptions struct {
	// SkipPaths are matched exactly against the request path
	SkipPaths []string
	// SkipSuccessful drops the completion record for statuses below 400
	SkipSuccessful bool
	LogHeaders     bool
	LogBody        bool
	// MaxBodyBytes caps the logged body; 0 means 4 KiB
	MaxBodyBytes int
}

// Logger middleware logs every incoming request and its outcome
func Logger(logger coreport.Logger, clock coreport.TimeProvider) gin.HandlerFunc {
	return RequestLogger(logger, clock, RequestLoggerOptions{})
}

// RequestLogger logs an incoming record before the handler runs and a
// completion record, leveled by status, after it
func RequestLogger(logger coreport.Logger, clock coreport.TimeProvider, opts RequestLoggerOptions) gin.HandlerFunc {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return func(c *gin.Context) {
		if slices.Contains(opts.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		start := clock.Now()
		method := c.Request.Method
		url := c.Request.URL.RequestURI()

		requestData := map[string]any{
			entity.KeyMethod: method,
			entity.KeyURL:    url,
			"userAgent":      c.Request.UserAgent(),
			"ip":             c.ClientIP(),
		}
		if id := GetRequestID(c); id != "" {
			requestData["requestId"] = id
		}
		if opts.LogHeaders {
			requestData["headers"] = headerFields(c.Request.Header)
		}
		if opts.LogBody {
			if body := peekBody(c.Request, maxBody); body != "" {
				requestData["body"] = body
			}
		}

		logger.Info(MsgRequestIncoming, requestData)

		c.Next()

		status := c.Writer.Status()
		if opts.SkipSuccessful && status < http.StatusBadRequest {
			return
		}

		message := MsgRequestSucceeded
		if status >= http.StatusBadRequest {
			message = MsgRequestFailed
		}
		if len(c.Errors) > 0 {
			requestData["errors"] = c.Errors.Errors()
		}

		logger.LogRequest(message, method, url, status, clock.Since(start), requestData)
	}
}

// headerFields flattens headers, masking credentials
func headerFields(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if slices.ContainsFunc(redactedHeaders, func(r string) bool { return strings.EqualFold(r, name) }) {
			out[name] = "[REDACTED]"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

// peekBody reads up to limit bytes of the body and restores it for the handler
func peekBody(r *http.Request, limit int) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, int64(limit)))
	if err != nil {
		return ""
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(data), r.Body), r.Body}
	return string(data)
}
