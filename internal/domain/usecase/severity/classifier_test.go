package severity

import (
	"fmt"
	"testing"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifyHTTP(t *testing.T) {
	testCases := []struct {
		status   entity.HTTPStatusCode
		expected entity.LogLevel
	}{
		{entity.StatusOK, entity.LogLevelInfo},
		{entity.StatusFound, entity.LogLevelInfo},
		{399, entity.LogLevelInfo},
		{400, entity.LogLevelWarn},
		{entity.StatusNotFound, entity.LogLevelWarn},
		{499, entity.LogLevelWarn},
		{500, entity.LogLevelError},
		{501, entity.LogLevelError},
		{entity.StatusGatewayTimeout, entity.LogLevelError},
		{0, entity.LogLevelInfo},
		{-1, entity.LogLevelInfo},
		{999, entity.LogLevelError},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyHTTP(tc.status))
		})
	}
}

func TestClassifyRequestMatchesHTTP(t *testing.T) {
	for status := 100; status < 600; status++ {
		assert.Equal(t, ClassifyHTTP(entity.HTTPStatusCode(status)), ClassifyRequest(status), "status %d", status)
	}

	assert.Equal(t, entity.LogLevelInfo, ClassifyRequest(399))
	assert.Equal(t, entity.LogLevelWarn, ClassifyRequest(400))
	assert.Equal(t, entity.LogLevelWarn, ClassifyRequest(499))
	assert.Equal(t, entity.LogLevelError, ClassifyRequest(500))
	assert.Equal(t, entity.LogLevelError, ClassifyRequest(501))
}

func TestClassifyAppError(t *testing.T) {
	testCases := []struct {
		code     entity.ApplicationErrorCode
		expected entity.LogLevel
	}{
		{entity.SysMemoryLimit, entity.LogLevelError},
		{entity.SysConfigError, entity.LogLevelError},
		{entity.DBConnectionError, entity.LogLevelError},
		{entity.DBRecordNotFound, entity.LogLevelError},
		{entity.ExtServiceTimeout, entity.LogLevelError},
		{entity.AuthTokenExpired, entity.LogLevelWarn},
		{entity.AuthInvalidCredentials, entity.LogLevelWarn},
		{entity.BizInvalidInput, entity.LogLevelWarn},
		{entity.BizInsufficientBalance, entity.LogLevelWarn},
		{entity.ValRequiredField, entity.LogLevelInfo},
		{entity.UnknownError, entity.LogLevelInfo},
		{"db_001", entity.LogLevelInfo},
		{"DB", entity.LogLevelInfo},
		{"", entity.LogLevelInfo},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyAppError(tc.code))
		})
	}
}
