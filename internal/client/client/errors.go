package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")

	// ErrBadResponse means a 2xx body could not be decoded.
	ErrBadResponse = errors.New("unexpected response")
	// ErrRejected is a 2xx envelope carrying "success": false.
	ErrRejected = errors.New("request rejected")
)

// StatusError is an unsuccessful response: a non-2xx status, or a 2xx
// envelope with "success": false. It unwraps to the matching sentinel.
type StatusError struct {
	Code    int
	Body    []byte
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.kind().Error(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s (%d)", e.kind().Error(), e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.kind()
}

func (e *StatusError) kind() error {
	switch {
	case e.Code < 400:
		return ErrRejected
	case e.Code == http.StatusBadRequest:
		return ErrBadRequest
	case e.Code == http.StatusUnauthorized, e.Code == http.StatusForbidden:
		return ErrUnauthorized
	case e.Code == http.StatusNotFound:
		return ErrNotFound
	case e.Code == http.StatusConflict:
		return ErrConflict
	default:
		return ErrServer
	}
}

func newStatusError(code int, body []byte) *StatusError {
	return &StatusError{Code: code, Body: body, Message: extractMessage(body)}
}

// extractMessage pulls a human readable message out of an error body:
// {"error": ...}, {"message": ...}, a JSON string or plain text.
func extractMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	switch body[0] {
	case '{':
		var payload struct {
			Error   any `json:"error"`
			Message any `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		for _, v := range []any{payload.Message, payload.Error} {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
		return ""
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			return s
		}
	case '[':
		return ""
	}

	if strings.HasPrefix(string(body), "<") {
		// HTML error page
		return ""
	}
	return string(body)
}

// ServerMessage returns the message the server attached to err, or "" when
// err is not a *StatusError or carries none.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
