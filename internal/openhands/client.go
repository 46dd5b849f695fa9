package openhands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// Client talks to the OpenHands backend API
type Client struct {
	baseURL    string
	healthPath string
	httpClient *http.Client
	logger     *utils.Logger
	token      string
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	BaseURL    string
	HealthPath string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *utils.Logger
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		BaseURL:    "http://localhost:8000",
		HealthPath: "/health",
		Timeout:    30 * time.Second,
	}
}

// NewClient creates a new OpenHands API client
func NewClient(opts ClientOptions) *Client {
	defaults := DefaultClientOptions()
	if opts.BaseURL == "" {
		opts.BaseURL = defaults.BaseURL
	}
	if opts.HealthPath == "" {
		opts.HealthPath = defaults.HealthPath
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		healthPath: "/" + strings.TrimLeft(opts.HealthPath, "/"),
		httpClient: httpClient,
		logger:     logger.WithComponent("openhands"),
		token:      opts.Token,
	}
}

// BaseURL returns the backend base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.token != "" {
		h.Set("Authorization", "Bearer "+c.token)
	}
	return h
}

// Request sends a JSON request to endpoint and decodes the response into out.
// A nil data sends no body; a nil out discards the response body.
// Non-2xx responses are returned as *domain.APIError.
func (c *Client) Request(ctx context.Context, method, endpoint string, data, out any) error {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = c.headers()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("OpenHands API request failed")
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		apiErr := domain.NewAPIError(endpoint, resp.StatusCode, string(text))
		c.logger.Error().Err(apiErr).Str("endpoint", endpoint).Msg("OpenHands API error")
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

// CheckHealth reports whether the backend answered its health path with a
// success status. Any failure is reported as false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("OpenHands API health check failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// Forward sends a raw request to <baseURL>/<path><query> and returns the
// upstream response unread. Callers own resp.Body.
func (c *Client) Forward(ctx context.Context, method, path, rawQuery string, header http.Header, body []byte) (*http.Response, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	return c.httpClient.Do(req)
}
