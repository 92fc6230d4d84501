package dto

// XMLLogRequest is the JSON form of POST /logs/xml
type XMLLogRequest struct {
	XML      string         `json:"xml" binding:"required"`
	Level    string         `json:"level"`
	Metadata map[string]any `json:"metadata"`
}

// XMLLogResponse reports whether the submitted document was well-formed
type XMLLogResponse struct {
	Accepted bool `json:"accepted"`
	Valid    bool `json:"valid"`
}

// EventLogRequest represents an application error event
type EventLogRequest struct {
	Code          string         `json:"code" binding:"required"`
	Message       string         `json:"message"`
	UserID        any            `json:"userId"`
	CorrelationID string         `json:"correlationId"`
	Component     string         `json:"component"`
	Operation     string         `json:"operation"`
	HTTPStatus    int            `json:"httpStatus"`
	Extra         map[string]any `json:"extra"`
}

// EventLogResponse reports the level the event was logged at
type EventLogResponse struct {
	Accepted bool   `json:"accepted"`
	Level    string `json:"level"`
}

// RecentLogsResponse lists the newest records held in memory, oldest first
type RecentLogsResponse struct {
	Count   int              `json:"count"`
	Records []map[string]any `json:"records"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
	Language    string `json:"language"`
}
