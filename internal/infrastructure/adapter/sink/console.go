package sink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// ConsoleSink writes records to stdout, and error records to stderr.
// Development mode uses zap's console encoder with colored levels,
// otherwise one JSON object per line.
type ConsoleSink struct {
	out zapcore.Core
	err zapcore.Core
}

// ConsoleOption configures a ConsoleSink
type ConsoleOption func(*consoleOptions)

type consoleOptions struct {
	stdout io.Writer
	stderr io.Writer
}

// WithConsoleWriters replaces stdout and stderr
func WithConsoleWriters(stdout, stderr io.Writer) ConsoleOption {
	return func(o *consoleOptions) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// NewConsoleSink creates a console sink that drops records below minLevel
func NewConsoleSink(development bool, minLevel entity.LogLevel, opts ...ConsoleOption) *ConsoleSink {
	o := consoleOptions{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	encCfg := encoderConfig()
	var encoder zapcore.Encoder
	if development {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	threshold := toZapLevel(minLevel)
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= threshold && l < zapcore.ErrorLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= threshold && l >= zapcore.ErrorLevel
	})

	return &ConsoleSink{
		out: zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(o.stdout)), low),
		err: zapcore.NewCore(encoder.Clone(), zapcore.Lock(zapcore.AddSync(o.stderr)), high),
	}
}

// Name identifies the sink in error reports
func (s *ConsoleSink) Name() string { return "console" }

// Write writes record if its level passes the threshold
func (s *ConsoleSink) Write(record entity.LogRecord) error {
	if record.Level >= entity.LogLevelError {
		return writeCore(s.err, record)
	}
	return writeCore(s.out, record)
}

// Flush syncs the underlying writers. Terminals and pipes often reject
// fsync, so sync errors are not reported.
func (s *ConsoleSink) Flush() error {
	_ = s.out.Sync()
	_ = s.err.Sync()
	return nil
}
