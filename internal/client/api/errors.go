package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

// Error is a non-2xx backend response. It unwraps to the matching
// sentinel in internal/common so callers can branch with errors.Is
// without looking at status codes.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusConflict:
		return common.ErrConflict
	default:
		return nil
	}
}

// errorBody is the backend's error envelope. The message field may be a
// single string or a list of validation messages.
type errorBody struct {
	Message any    `json:"message"`
	Error   string `json:"error"`
}

// newError builds an *Error from a response status and raw body.
func newError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return &Error{Status: status}
	}

	switch msg := eb.Message.(type) {
	case string:
		return &Error{Status: status, Message: msg}
	case []any:
		parts := make([]string, 0, len(msg))
		for _, m := range msg {
			if s, ok := m.(string); ok {
				parts = append(parts, s)
			}
		}
		return &Error{Status: status, Message: strings.Join(parts, "; ")}
	default:
		return &Error{Status: status, Message: eb.Error}
	}
}
