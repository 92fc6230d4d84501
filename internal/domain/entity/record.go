package entity

import (
	"time"
)

// TimestampLayout is the fixed, second-precision layout of record timestamps
const TimestampLayout = "2006-01-02 15:04:05"

// Reserved metadata keys set by the domain helpers
const (
	KeyHTTPStatus = "httpStatus"
	KeyStatusCode = "statusCode"
	KeyErrorCode  = "errorCode"
	KeyMethod     = "method"
	KeyURL        = "url"
	KeyDuration   = "duration"
)

// Additional metadata keys attached by the Logger
const (
	KeyStack = "stack"
	KeyError = "error"
	KeyXML   = "xml"
)

// LogRecord is one finished log event handed to the sinks.
// Records are built per call and never retained by the Logger.
type LogRecord struct {
	Timestamp string
	Service   string
	Level     LogLevel
	Message   string
	Stack     string
	Metadata  map[string]any
}

// FormatTimestamp renders t in the record layout, normalized to UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Fields flattens the record into a single map the way the record is
// serialized by structured sinks. Metadata never overrides the record's own
// timestamp, service, level and message.
func (r LogRecord) Fields() map[string]any {
	out := make(map[string]any, len(r.Metadata)+5)
	for k, v := range r.Metadata {
		out[k] = v
	}
	out["timestamp"] = r.Timestamp
	out["service"] = r.Service
	out["level"] = r.Level.String()
	out["message"] = r.Message
	if r.Stack != "" {
		out[KeyStack] = r.Stack
	}
	return out
}
