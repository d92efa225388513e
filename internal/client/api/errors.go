package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind string

const (
	KindTransport Kind = "transport"
	KindClient    Kind = "client"
	KindServer    Kind = "server"
	KindDecode    Kind = "decode"
)

const unexpectedError = "Unexpected error"

// Error is the single error shape returned by every API call. Message is
// already suitable for display.
type Error struct {
	Kind    Kind
	Status  int
	Method  string
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsRetryable reports whether repeating the request may succeed. Client
// errors are final.
func IsRetryable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return true
	}
	return apiErr.Kind != KindClient
}

func transportError(r request, err error) *Error {
	message := err.Error()
	if message == "" {
		message = unexpectedError
	}
	return &Error{
		Kind:    KindTransport,
		Method:  r.method,
		Path:    r.path,
		Message: message,
		Err:     err,
	}
}

func statusError(r request, status int, payload []byte) *Error {
	kind := KindClient
	if status >= http.StatusInternalServerError {
		kind = KindServer
	}

	message := detailMessage(payload)
	if message == "" {
		message = fmt.Sprintf("Request failed with status code %d", status)
	}

	return &Error{
		Kind:    kind,
		Status:  status,
		Method:  r.method,
		Path:    r.path,
		Message: message,
	}
}

// detailMessage extracts the server supplied reason. Validation failures carry
// a list of {msg} objects instead of a string.
func detailMessage(payload []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		messages := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				messages = append(messages, item.Msg)
			}
		}
		return strings.Join(messages, "; ")
	}

	return ""
}
