package entity

// ErrorContext carries the context of an application error.
// Only populated fields are emitted.
type ErrorContext struct {
	UserID        any
	RequestID     string
	CorrelationID string
	Component     string
	Operation     string
	HTTPStatus    HTTPStatusCode
	// Extra holds any additional caller fields
	Extra map[string]any
}

// LogFields returns a map of fields for structured logging
func (c ErrorContext) LogFields() map[string]any {
	fields := make(map[string]any, len(c.Extra)+6)
	if c.UserID != nil {
		fields["userId"] = c.UserID
	}
	if c.RequestID != "" {
		fields["requestId"] = c.RequestID
	}
	if c.CorrelationID != "" {
		fields["correlationId"] = c.CorrelationID
	}
	if c.Component != "" {
		fields["component"] = c.Component
	}
	if c.Operation != "" {
		fields["operation"] = c.Operation
	}
	if c.HTTPStatus != 0 {
		fields[KeyHTTPStatus] = int(c.HTTPStatus)
	}
	for k, v := range c.Extra {
		fields[k] = v
	}
	return fields
}
