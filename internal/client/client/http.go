package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultTimeout = 10 * time.Second
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  logging.Logger

	// Transport overrides http.DefaultTransport; used by tests.
	Transport http.RoundTripper
}

// HTTPClient implements API over the backend's REST endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ API = (*HTTPClient)(nil)

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", base)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	next := opts.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &loggingTransport{next: next, log: log},
		},
		log: log,
	}, nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// loggingTransport stamps a request id on each request and logs the outcome.
type loggingTransport struct {
	next http.RoundTripper
	log  logging.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		// RoundTrippers must not modify the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	reqID := req.Header.Get(common.RequestIDHeaderName)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Error(req.Context(), "api error",
			"method", req.Method, "url", req.URL.String(), "request_id", reqID, "error", err)
		return nil, err
	}

	t.log.Debug(req.Context(), "api response",
		"method", req.Method, "url", req.URL.String(), "request_id", reqID,
		"status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends one request and returns the body of a 2xx response. Transport
// failures map to ErrUnavailable, other statuses to *StatusError.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, data)
	}
	return data, nil
}

func decode[T any](method, path string, data []byte) (T, error) {
	var out T
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %s %s: %v", ErrBadResponse, method, path, err)
	}
	return out, nil
}

func call[T any](ctx context.Context, c *HTTPClient, method, path string, query url.Values, body any) (T, error) {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](method, path, data)
}

func getJSON[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) (T, error) {
	return call[T](ctx, c, http.MethodGet, path, query, nil)
}

// list decodes a JSON array, treating an empty body or null as no items.
func list[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) ([]T, error) {
	items, err := getJSON[[]T](ctx, c, path, query)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func seg(v any) string {
	return url.PathEscape(fmt.Sprint(v))
}
