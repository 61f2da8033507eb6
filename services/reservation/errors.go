package reservation

import "fmt"

// ClientError describes a failure talking to the booking backend. Code is one
// of "configError", "apiError" or "decodeError"; Status carries the HTTP
// status for API errors.
type ClientError struct {
	Code    string
	Status  int
	Message string
}

func (e *ClientError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConfigError reports missing client configuration. It is raised on the
// first call, not at construction.
func NewConfigError(msg string) error {
	return &ClientError{Code: "configError", Message: msg}
}

// NewAPIError reports a non-success HTTP response with its body captured.
func NewAPIError(status int, body string) error {
	return &ClientError{Code: "apiError", Status: status, Message: body}
}

// NewDecodeError reports an unparseable response body, keeping the raw text.
func NewDecodeError(body string) error {
	return &ClientError{Code: "decodeError", Message: body}
}
