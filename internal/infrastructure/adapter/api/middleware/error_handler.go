package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/adapter/api/dto"
)

// MsgRequestPanic is the translation key of the panic record
const MsgRequestPanic = "request.panic"

// ErrorHandler middleware recovers from panics, logs them as HTTP 500
// errors and returns a JSON error response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.LogHTTPError(MsgRequestPanic, entity.StatusInternalServerError, map[string]any{
					entity.KeyError:  fmt.Sprint(err),
					"path":           c.Request.URL.Path,
					entity.KeyMethod: c.Request.Method,
					"ip":             c.ClientIP(),
					"requestId":      GetRequestID(c),
					"userAgent":      c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    http.StatusInternalServerError,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
