// Package sink contains the destinations a Logger writes finished records to.
// Every sink is safe for concurrent use.
package sink

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// toZapLevel converts a record level to the equivalent zap level
func toZapLevel(level entity.LogLevel) zapcore.Level {
	switch level {
	case entity.LogLevelDebug:
		return zap.DebugLevel
	case entity.LogLevelInfo:
		return zap.InfoLevel
	case entity.LogLevelWarn:
		return zap.WarnLevel
	case entity.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// encoderConfig omits zap's own clock; records carry their timestamp as a field
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		NameKey:        zapcore.OmitKey,
		TimeKey:        zapcore.OmitKey,
		CallerKey:      zapcore.OmitKey,
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// recordToZapFields converts a record into zap fields with stable key order.
// Level and message are encoded by zap itself.
func recordToZapFields(record entity.LogRecord) []zap.Field {
	fields := record.Fields()
	delete(fields, "level")
	delete(fields, "message")

	zapFields := make([]zap.Field, 0, len(fields))
	zapFields = append(zapFields,
		zap.String("timestamp", record.Timestamp),
		zap.String("service", record.Service),
	)
	delete(fields, "timestamp")
	delete(fields, "service")

	for _, k := range slices.Sorted(maps.Keys(fields)) {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	return zapFields
}

// writeCore encodes record through core if its level is enabled there
func writeCore(core zapcore.Core, record entity.LogRecord) error {
	level := toZapLevel(record.Level)
	if !core.Enabled(level) {
		return nil
	}
	return core.Write(zapcore.Entry{Level: level, Message: record.Message}, recordToZapFields(record))
}
