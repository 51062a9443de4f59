package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
)

const (
	// DefaultTimeout bounds one request, not the caller's whole operation
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader carries the service-to-service credential
	APIKeyHeader = "X-API-Key"
)

// APIKeyClient is an HTTP client for internal service calls authenticated
// with a shared API key
type APIKeyClient struct {
	client  *nethttp.Client
	apiKey  string
	baseURL string
}

// NewAPIKeyClient creates a client for the service at baseURL
func NewAPIKeyClient(baseURL, apiKey string) *APIKeyClient {
	return &APIKeyClient{
		client:  &nethttp.Client{Timeout: DefaultTimeout},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// SetTimeout overrides the per-request timeout
func (c *APIKeyClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// PostJSON posts a JSON body and decodes the JSON response into result
// when result is non-nil. Status codes >= 400 are errors.
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= nethttp.StatusBadRequest {
		return fmt.Errorf("request to %s returned status %d", endpoint, resp.StatusCode)
	}
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// GetJSON fetches an endpoint and decodes the JSON response into result
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= nethttp.StatusBadRequest {
		return fmt.Errorf("request to %s returned status %d", endpoint, resp.StatusCode)
	}
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Debug("HTTP request failed",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
