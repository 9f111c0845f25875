package contextmem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

// ClientInterface defines the main interface for interacting with the
// memory service API
type ClientInterface interface {
	// Error record operations
	SubmitError(ctx context.Context, req *SubmitErrorRequest) (*SubmitErrorResponse, error)
	QuerySimilarErrors(ctx context.Context, errorMessage string) (*QuerySimilarErrorsResponse, error)

	// Service operations
	Health(ctx context.Context) (*HealthResponse, error)
}

// Client provides a high-level interface for interacting with the memory
// service API
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new context-mem client with the given options
func NewClient(options ...ClientOption) *Client {
	config := DefaultConfig()

	for _, option := range options {
		option(config)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// SubmitError stores an error record in the memory service
func (c *Client) SubmitError(ctx context.Context, req *SubmitErrorRequest) (*SubmitErrorResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}

	resp, err := c.doRequest(ctx, "POST", "/v1/errors", req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit error record: %w", err)
	}

	var result SubmitErrorResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process submit error response: %w", err)
	}

	return &result, nil
}

// QuerySimilarErrors retrieves historical errors judged similar to the given
// error message
func (c *Client) QuerySimilarErrors(ctx context.Context, errorMessage string) (*QuerySimilarErrorsResponse, error) {
	if errorMessage == "" {
		return nil, fmt.Errorf("error message is required")
	}

	queryParams := url.Values{}
	queryParams.Add("error_message", errorMessage)

	path := fmt.Sprintf("/v1/errors/similar?%s", queryParams.Encode())

	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar errors: %w", err)
	}

	var result QuerySimilarErrorsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process similar errors response: %w", err)
	}

	return &result, nil
}

// Health checks whether the memory service is reachable and healthy
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, "GET", "/v1/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check memory service health: %w", err)
	}

	var result HealthResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process health response: %w", err)
	}

	return &result, nil
}

// doRequest performs an HTTP request with retry logic and proper error handling
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var bodyBytes []byte
	var requestBody io.Reader

	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewBuffer(bodyBytes)
	}

	url := c.config.BaseURL + path
	requestID := xid.New().String()

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.config.RetryDelay):
			}
			// Reset body reader for retry
			if bodyBytes != nil {
				requestBody = bytes.NewBuffer(bodyBytes)
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		for key, value := range c.config.DefaultHeaders {
			req.Header.Set(key, value)
		}

		req.Header.Set("X-Request-ID", requestID)

		if c.config.UserAgent != "" {
			req.Header.Set("User-Agent", c.config.UserAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Server errors might be transient, retry them
		if resp.StatusCode >= 500 {
			log.Debug().
				Int("status_code", resp.StatusCode).
				Str("request_id", requestID).
				Msg("memory service returned server error")

			resp.Body.Close()
			lastErr = &Error{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("server error: %d", resp.StatusCode),
				RequestID:  requestID,
			}
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", c.config.RetryAttempts, lastErr)
}

// handleResponse processes the HTTP response and unmarshals JSON if successful
func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errorResponse struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}

		if json.Unmarshal(body, &errorResponse) == nil && errorResponse.Error != "" {
			return &Error{
				StatusCode: resp.StatusCode,
				Message:    errorResponse.Error,
				Body:       string(body),
				RequestID:  resp.Header.Get("X-Request-ID"),
			}
		}

		if json.Unmarshal(body, &errorResponse) == nil && errorResponse.Message != "" {
			return &Error{
				StatusCode: resp.StatusCode,
				Message:    errorResponse.Message,
				Body:       string(body),
				RequestID:  resp.Header.Get("X-Request-ID"),
			}
		}

		return &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
			Body:       string(body),
			RequestID:  resp.Header.Get("X-Request-ID"),
		}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
