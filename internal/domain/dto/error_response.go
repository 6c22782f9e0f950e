package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Message: human-readable description of what failed.
//   - ErrorDetails: optional underlying error text (omitted when empty).
//   - Timestamp: moment the response was built (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid start format, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time ..."`
	Timestamp    time.Time `json:"timestamp" example:"2024-09-02T12:00:00Z"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so handlers can pass the response
// around as a regular error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
