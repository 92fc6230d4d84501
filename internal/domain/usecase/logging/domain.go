package logging

import (
	"time"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/amirhossein-jamali/logfacade/internal/domain/usecase/severity"
)

// LogHTTPError logs message at the level implied by httpStatus. The status is
// recorded under both "httpStatus" and "statusCode"; caller metadata is
// merged over them, but the level always follows the httpStatus argument.
func (l *Logger) LogHTTPError(message string, httpStatus entity.HTTPStatusCode, metadata map[string]any) {
	fields := map[string]any{
		entity.KeyHTTPStatus: int(httpStatus),
		entity.KeyStatusCode: int(httpStatus),
	}
	l.Log(severity.ClassifyHTTP(httpStatus), message, mergeFields(fields, metadata))
}

// LogApplicationError logs message at the level implied by the error code family
func (l *Logger) LogApplicationError(message string, errorCode entity.ApplicationErrorCode, errCtx entity.ErrorContext) {
	fields := map[string]any{
		entity.KeyErrorCode: string(errorCode),
	}
	l.Log(severity.ClassifyAppError(errorCode), message, mergeFields(fields, errCtx.LogFields()))
}

// LogRequest logs the outcome of an HTTP request at the level implied by its
// status code. The duration is recorded in whole milliseconds; a zero
// duration means "not measured" and is left out.
func (l *Logger) LogRequest(
	message string,
	method string,
	url string,
	statusCode int,
	duration time.Duration,
	metadata map[string]any,
) {
	fields := map[string]any{
		entity.KeyMethod:     method,
		entity.KeyURL:        url,
		entity.KeyStatusCode: statusCode,
	}
	if duration != 0 {
		fields[entity.KeyDuration] = duration.Milliseconds()
	}
	l.Log(severity.ClassifyRequest(statusCode), message, mergeFields(fields, metadata))
}
