package logging

import (
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logfacade/internal/domain/error"
	"github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
)

var _ core.Logger = (*Logger)(nil)

// Logger assembles log records and offers them to every registered sink
type Logger struct {
	config      entity.EffectiveConfig
	translator  core.Translator
	xml         core.XMLProcessor
	clock       core.TimeProvider
	onSinkError func(error)

	mu    sync.RWMutex
	sinks []core.Sink
}

// NewLogger creates a logger bound to cfg. Without WithSinks the logger
// drops every record until a sink is added with AddSink.
func NewLogger(
	cfg entity.EffectiveConfig,
	translator core.Translator,
	xmlProcessor core.XMLProcessor,
	timeProvider core.TimeProvider,
	opts ...Option,
) *Logger {
	l := &Logger{
		config:      cfg,
		translator:  translator,
		xml:         xmlProcessor,
		clock:       timeProvider,
		onSinkError: defaultOnSinkError,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns a copy of the effective configuration
func (l *Logger) Config() entity.EffectiveConfig {
	return l.config
}

// AddSink registers an additional sink. Sinks cannot be removed.
func (l *Logger) AddSink(s core.Sink) {
	if s == nil {
		return
	}
	l.mu.Lock()
	l.sinks = append(l.sinks, s)
	l.mu.Unlock()
}

// Log emits message at level. A message that is a translation key for the
// configured language is replaced by its translation.
func (l *Logger) Log(level entity.LogLevel, message string, metadata map[string]any) {
	l.emit(level, l.resolveMessage(message), "", mergeFields(nil, metadata))
}

// Debug logs debug messages
func (l *Logger) Debug(message string, metadata map[string]any) {
	l.Log(entity.LogLevelDebug, message, metadata)
}

// Info logs informational messages
func (l *Logger) Info(message string, metadata map[string]any) {
	l.Log(entity.LogLevelInfo, message, metadata)
}

// Warn logs warning messages
func (l *Logger) Warn(message string, metadata map[string]any) {
	l.Log(entity.LogLevelWarn, message, metadata)
}

// Error logs an error message. When err is non-nil its text is attached
// under "error", and its stack trace, if the chain recorded one, under "stack".
func (l *Logger) Error(message string, err error, metadata map[string]any) {
	fields := make(map[string]any, len(metadata)+2)
	stack := ""
	if err != nil {
		fields[entity.KeyError] = err.Error()
		if st, ok := domainerr.StackTrace(err); ok {
			stack = st
			fields[entity.KeyStack] = st
		}
	}
	l.emit(entity.LogLevelError, l.resolveMessage(message), stack, mergeFields(fields, metadata))
}

// LogI18n translates key with params in the configured language and logs the result
func (l *Logger) LogI18n(level entity.LogLevel, key string, params map[string]any, metadata map[string]any) {
	message := key
	if l.translator != nil {
		message = l.translator.Translate(l.config.Language, key, params)
	}
	l.emit(level, message, "", mergeFields(nil, metadata))
}

// Flush flushes every registered sink and returns the joined errors
func (l *Logger) Flush() error {
	var errs []error
	for _, s := range l.snapshot() {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Logger) resolveMessage(message string) string {
	if l.translator == nil || !l.translator.Has(l.config.Language, message) {
		return message
	}
	return l.translator.Translate(l.config.Language, message, nil)
}

func (l *Logger) emit(level entity.LogLevel, message, stack string, metadata map[string]any) {
	record := entity.LogRecord{
		Timestamp: entity.FormatTimestamp(l.clock.Now()),
		Service:   l.config.Service,
		Level:     level,
		Message:   message,
		Stack:     stack,
		Metadata:  metadata,
	}
	for _, s := range l.snapshot() {
		l.write(s, record)
	}
}

func (l *Logger) write(s core.Sink, record entity.LogRecord) {
	defer func() {
		if r := recover(); r != nil {
			l.onSinkError(domainerr.NewSinkError(sinkName(s), fmt.Errorf("panic: %v", r)))
		}
	}()
	if err := s.Write(record); err != nil {
		l.onSinkError(domainerr.NewSinkError(sinkName(s), err))
	}
}

func (l *Logger) snapshot() []core.Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sinks
}

func sinkName(s core.Sink) string {
	if named, ok := s.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", s)
}

// mergeFields copies base and then overlay into a new map; overlay wins on
// key collisions. Caller maps are never mutated.
func mergeFields(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
