package sink

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	"github.com/amirhossein-jamali/logfacade/internal/infrastructure/config"
)

// Rotation defaults for file sinks
const (
	DefaultFileMaxSizeMB  = 20
	DefaultFileMaxAgeDays = 14
)

// FileSink appends JSON lines to a size-rotated file
type FileSink struct {
	core   zapcore.Core
	writer *lumberjack.Logger
}

// NewFileSink creates a file sink. Zero sizes and ages fall back to 20 MB
// and 14 days.
func NewFileSink(cfg config.FileSinkConfig, minLevel entity.LogLevel) *FileSink {
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = DefaultFileMaxSizeMB
	}
	maxAge := cfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = DefaultFileMaxAgeDays
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  false,
	}

	return &FileSink{
		core: zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig()),
			zapcore.Lock(zapcore.AddSync(writer)),
			toZapLevel(minLevel),
		),
		writer: writer,
	}
}

// Name identifies the sink in error reports
func (s *FileSink) Name() string { return "file" }

// Write appends record if its level passes the threshold
func (s *FileSink) Write(record entity.LogRecord) error {
	return writeCore(s.core, record)
}

// Flush syncs buffered output
func (s *FileSink) Flush() error {
	return s.core.Sync()
}

// Close closes the current log file
func (s *FileSink) Close() error {
	return s.writer.Close()
}
