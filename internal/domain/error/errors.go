package error

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// XML pipeline stages reported in XMLProcessingError
const (
	StageValidate = "validate"
	StageParse    = "parse"
	StageBuild    = "build"
)

// Base error types
var (
	// ErrInvalidXML is returned when a document is not well-formed
	ErrInvalidXML = errors.New("invalid xml document")

	// ErrXMLParse is returned when a well-formed document cannot be converted to a tree
	ErrXMLParse = errors.New("xml parse failed")

	// ErrXMLBuild is returned when a tree cannot be serialized back to XML
	ErrXMLBuild = errors.New("xml build failed")

	// ErrSinkUnavailable is returned when a sink cannot reach its destination
	ErrSinkUnavailable = errors.New("sink unavailable")

	// ErrInvalidSinkConfig is returned when a sink is configured with missing or invalid settings
	ErrInvalidSinkConfig = errors.New("invalid sink configuration")
)

// XMLProcessingError describes a failure in one stage of the XML pipeline
type XMLProcessingError struct {
	Stage string
	Input string
	Err   error
}

// Error implements the error interface for XMLProcessingError
func (e *XMLProcessingError) Error() string {
	return fmt.Sprintf("xml %s failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *XMLProcessingError) Unwrap() error {
	return e.Err
}

// Is matches the stage sentinel so callers can test errors.Is(err, ErrXMLParse)
func (e *XMLProcessingError) Is(target error) bool {
	switch e.Stage {
	case StageValidate:
		return target == ErrInvalidXML
	case StageParse:
		return target == ErrXMLParse
	case StageBuild:
		return target == ErrXMLBuild
	}
	return false
}

// LogFields returns a map of fields for structured logging
func (e *XMLProcessingError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "xml_processing_error",
		"stage":      e.Stage,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewXMLProcessingError creates a processing error annotated with the caller's stack
func NewXMLProcessingError(stage, input string, err error) error {
	return pkgerrors.WithStack(&XMLProcessingError{
		Stage: stage,
		Input: input,
		Err:   err,
	})
}

// SinkError reports a failed delivery to a named sink
type SinkError struct {
	Sink string
	Err  error
}

// Error implements the error interface for SinkError
func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: %v", e.Sink, e.Err)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Err
}

// NewSinkError wraps err with the sink name
func NewSinkError(sink string, err error) error {
	return &SinkError{Sink: sink, Err: err}
}

// LogFielder is implemented by errors that carry structured context
type LogFielder interface {
	LogFields() map[string]any
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace returns the formatted stack of the outermost error in the chain
// that recorded one
func StackTrace(err error) (string, bool) {
	var st stackTracer
	if !errors.As(err, &st) {
		return "", false
	}
	return fmt.Sprintf("%+v", st.StackTrace()), true
}

// IsXMLError checks if the error came from the XML pipeline
func IsXMLError(err error) bool {
	var xe *XMLProcessingError
	return errors.As(err, &xe)
}
