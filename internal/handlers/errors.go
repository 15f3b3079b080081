package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// APIError is the error body for every failure response:
// {"error": "<message>"}. Installed as the huma error model so
// framework-raised errors (unparseable bodies and the like) share the
// shape with handler-raised ones.
type APIError struct {
	status  int
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType keeps responses as plain application/json instead of
// huma's default problem+json.
func (e *APIError) ContentType(string) string {
	return "application/json"
}

// NewAPIError adapts huma's error constructor to the APIError shape.
func NewAPIError(status int, message string, errs ...error) huma.StatusError {
	if message == "" {
		if len(errs) > 0 {
			message = errs[0].Error()
		} else {
			message = http.StatusText(status)
		}
	}
	return &APIError{status: status, Message: message}
}
