// Package severity maps domain signals to log levels.
package severity

import (
	"strings"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

var (
	errorPrefixes = []string{"SYS_", "DB_", "EXT_"}
	warnPrefixes  = []string{"AUTH_", "BIZ_"}
)

// ClassifyHTTP maps an HTTP status to a level: 5xx and above are errors,
// 4xx are warnings, everything else is informational
func ClassifyHTTP(status entity.HTTPStatusCode) entity.LogLevel {
	return byStatus(int(status))
}

// ClassifyRequest applies the HTTP thresholds to the status of a completed request
func ClassifyRequest(statusCode int) entity.LogLevel {
	return byStatus(statusCode)
}

// ClassifyAppError maps an application error code to a level by its family prefix.
// Matching is an exact, case-sensitive prefix check.
func ClassifyAppError(code entity.ApplicationErrorCode) entity.LogLevel {
	switch {
	case hasAnyPrefix(string(code), errorPrefixes):
		return entity.LogLevelError
	case hasAnyPrefix(string(code), warnPrefixes):
		return entity.LogLevelWarn
	default:
		return entity.LogLevelInfo
	}
}

func byStatus(status int) entity.LogLevel {
	switch {
	case status >= 500:
		return entity.LogLevelError
	case status >= 400:
		return entity.LogLevelWarn
	default:
		return entity.LogLevelInfo
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
