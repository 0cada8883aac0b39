package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// The support endpoints wrap payloads as {"success": true, "<key>": ...}.
// unwrap also accepts the bare payload.
func unwrap[T any](method, path string, code int, data []byte, key string) (T, error) {
	var zero T

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return decode[T](method, path, data)
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return zero, fmt.Errorf("%w: %s %s: %v", ErrBadResponse, method, path, err)
	}

	success, hasSuccess := env["success"]
	if hasSuccess && bytes.Equal(bytes.TrimSpace(success), []byte("false")) {
		return zero, newStatusError(code, data)
	}

	raw, wrapped := env[key]
	if !wrapped {
		if hasSuccess {
			return zero, nil
		}
		return decode[T](method, path, data)
	}
	return decode[T](method, path, raw)
}

func enveloped[T any](ctx context.Context, c *HTTPClient, method, path string, query url.Values, body any, key string) (T, error) {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return unwrap[T](method, path, http.StatusOK, data, key)
}

func envelopedList[T any](ctx context.Context, c *HTTPClient, path, key string) ([]T, error) {
	items, err := enveloped[[]T](ctx, c, http.MethodGet, path, nil, nil, key)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
