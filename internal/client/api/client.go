package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/s21platform/moviemagic/internal/config"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger

	mu          sync.RWMutex
	interceptor Interceptor
}

func New(cfg *config.Config, logger Logger) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

// SetInterceptor installs the handler for failed responses. The session guard
// is attached after construction because it depends on stores built on top of
// the client.
func (c *Client) SetInterceptor(interceptor Interceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interceptor = interceptor
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   interface{}
}

func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	err := c.execute(ctx, r, out)
	if err == nil {
		return nil
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = &Error{Kind: KindTransport, Method: r.method, Path: r.path, Message: err.Error(), Err: err}
	}

	c.mu.RLock()
	interceptor := c.interceptor
	c.mu.RUnlock()

	c.logger.Warn(fmt.Sprintf("%s %s failed: %s", r.method, r.path, apiErr.Message))
	if interceptor != nil {
		interceptor.OnError(ctx, apiErr)
	}

	return apiErr
}

func (c *Client) execute(ctx context.Context, r request, out interface{}) error {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		jsonData, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(r, err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(r, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(r, resp.StatusCode, payload)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{
			Kind:    KindDecode,
			Status:  resp.StatusCode,
			Method:  r.method,
			Path:    r.path,
			Message: fmt.Sprintf("failed to decode response: %v", err),
			Err:     err,
		}
	}

	return nil
}
