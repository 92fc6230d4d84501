package logging

import (
	"fmt"
	"os"

	"github.com/amirhossein-jamali/logfacade/internal/domain/port/core"
)

// Option configures a Logger at construction
type Option func(*Logger)

// WithSinks registers the initial sinks
func WithSinks(sinks ...core.Sink) Option {
	return func(l *Logger) {
		for _, s := range sinks {
			if s != nil {
				l.sinks = append(l.sinks, s)
			}
		}
	}
}

// WithOnSinkError sets the callback invoked when a sink write fails or
// panics. It runs synchronously on the logging goroutine and must not log
// through the same Logger.
func WithOnSinkError(fn func(error)) Option {
	return func(l *Logger) {
		if fn != nil {
			l.onSinkError = fn
		}
	}
}

func defaultOnSinkError(err error) {
	fmt.Fprintf(os.Stderr, "logfacade: %v\n", err)
}
