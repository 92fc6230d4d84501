package core

import (
	"time"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// Logger is the logging facade used by adapters
type Logger interface {
	Debug(message string, metadata map[string]any)
	Info(message string, metadata map[string]any)
	Warn(message string, metadata map[string]any)
	Error(message string, err error, metadata map[string]any)
	Log(level entity.LogLevel, message string, metadata map[string]any)
	LogI18n(level entity.LogLevel, key string, params map[string]any, metadata map[string]any)
	LogHTTPError(message string, httpStatus entity.HTTPStatusCode, metadata map[string]any)
	LogApplicationError(message string, errorCode entity.ApplicationErrorCode, errCtx entity.ErrorContext)
	LogRequest(message, method, url string, statusCode int, duration time.Duration, metadata map[string]any)
	LogXML(xmlText string, level entity.LogLevel, metadata map[string]any) bool
	Config() entity.EffectiveConfig
	AddSink(s Sink)
	Flush() error
}

// Sink receives finished log records.
//
// Implementations must be safe for concurrent use: the Logger performs no
// locking around Write, so thread-safety of a shared Logger reduces to the
// thread-safety of its sinks.
type Sink interface {
	// Write delivers a single record. It returns once the record has been
	// handed to the underlying transport.
	Write(record entity.LogRecord) error
	// Flush ensures all buffered records are written to their destination
	Flush() error
}

// Translator maps message keys to localized templates
type Translator interface {
	// Translate resolves key for lang and substitutes {param} placeholders.
	// Unknown keys are returned verbatim.
	Translate(lang entity.Language, key string, params map[string]any) string
	// Has reports whether key is defined for lang
	Has(lang entity.Language, key string) bool
}

// XMLProcessor validates, parses and serializes XML documents
type XMLProcessor interface {
	// Validate checks well-formedness only
	Validate(xmlText string) bool
	// Parse converts a well-formed document into a nested map
	Parse(xmlText string) (map[string]any, error)
	// Build serializes a nested map back into XML text
	Build(tree map[string]any) (string, error)
}
