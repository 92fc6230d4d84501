package entity

// HTTPStatusCode enumerates the HTTP statuses the facade names explicitly.
// Classification works on numeric ranges, so any int converts safely.
type HTTPStatusCode int

const (
	// 2xx Success
	StatusOK        HTTPStatusCode = 200
	StatusCreated   HTTPStatusCode = 201
	StatusAccepted  HTTPStatusCode = 202
	StatusNoContent HTTPStatusCode = 204

	// 3xx Redirection
	StatusMovedPermanently HTTPStatusCode = 301
	StatusFound            HTTPStatusCode = 302
	StatusNotModified      HTTPStatusCode = 304

	// 4xx Client Error
	StatusBadRequest          HTTPStatusCode = 400
	StatusUnauthorized        HTTPStatusCode = 401
	StatusForbidden           HTTPStatusCode = 403
	StatusNotFound            HTTPStatusCode = 404
	StatusMethodNotAllowed    HTTPStatusCode = 405
	StatusConflict            HTTPStatusCode = 409
	StatusUnprocessableEntity HTTPStatusCode = 422
	StatusTooManyRequests     HTTPStatusCode = 429

	// 5xx Server Error
	StatusInternalServerError HTTPStatusCode = 500
	StatusNotImplemented      HTTPStatusCode = 501
	StatusBadGateway          HTTPStatusCode = 502
	StatusServiceUnavailable  HTTPStatusCode = 503
	StatusGatewayTimeout      HTTPStatusCode = 504
)

// ApplicationErrorCode identifies an application failure. The prefix before
// the underscore names the failure family used for severity classification.
type ApplicationErrorCode string

const (
	// Authentication & Authorization
	AuthTokenExpired            ApplicationErrorCode = "AUTH_001"
	AuthTokenInvalid            ApplicationErrorCode = "AUTH_002"
	AuthInsufficientPermissions ApplicationErrorCode = "AUTH_003"
	AuthUserNotFound            ApplicationErrorCode = "AUTH_004"
	AuthInvalidCredentials      ApplicationErrorCode = "AUTH_005"

	// Database
	DBConnectionError     ApplicationErrorCode = "DB_001"
	DBQueryError          ApplicationErrorCode = "DB_002"
	DBTransactionError    ApplicationErrorCode = "DB_003"
	DBConstraintViolation ApplicationErrorCode = "DB_004"
	DBRecordNotFound      ApplicationErrorCode = "DB_005"

	// External Services
	ExtServiceUnavailable     ApplicationErrorCode = "EXT_001"
	ExtServiceTimeout         ApplicationErrorCode = "EXT_002"
	ExtServiceInvalidResponse ApplicationErrorCode = "EXT_003"
	ExtAPIRateLimit           ApplicationErrorCode = "EXT_004"

	// Business Logic
	BizInvalidInput        ApplicationErrorCode = "BIZ_001"
	BizResourceNotFound    ApplicationErrorCode = "BIZ_002"
	BizOperationNotAllowed ApplicationErrorCode = "BIZ_003"
	BizDuplicateResource   ApplicationErrorCode = "BIZ_004"
	BizInsufficientBalance ApplicationErrorCode = "BIZ_005"

	// System
	SysMemoryLimit  ApplicationErrorCode = "SYS_001"
	SysDiskFull     ApplicationErrorCode = "SYS_002"
	SysCPUOverload  ApplicationErrorCode = "SYS_003"
	SysNetworkError ApplicationErrorCode = "SYS_004"
	SysConfigError  ApplicationErrorCode = "SYS_005"

	// Validation
	ValRequiredField ApplicationErrorCode = "VAL_001"
	ValInvalidFormat ApplicationErrorCode = "VAL_002"
	ValOutOfRange    ApplicationErrorCode = "VAL_003"
	ValInvalidType   ApplicationErrorCode = "VAL_004"

	// Generic
	UnknownError ApplicationErrorCode = "GEN_001"
)
