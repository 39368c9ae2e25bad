package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// defaultErrorMessage is shown when a failed response carries no usable body.
const defaultErrorMessage = "request failed"

// ServerError is a non-2xx response from the backend. Message holds the
// server-provided explanation when one could be decoded, otherwise the raw
// response text, otherwise a generic default.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// newServerError extracts the most useful message available from a failed
// response body: a JSON {"message": ...} field, then the raw text, then the
// default.
func newServerError(status int, body []byte) *ServerError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &ServerError{Status: status, Message: payload.Message}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return &ServerError{Status: status, Message: text}
	}
	return &ServerError{Status: status, Message: defaultErrorMessage}
}
