// Package client talks to the campaign loader HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

var (
	ErrNotConfigured = errors.New("API URL not configured: set CAMPAIGNCTL_API_URL")
	ErrUnreachable   = errors.New("cannot connect to server: ensure the backend is deployed and the API URL is configured")
)

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 30 * time.Second

// APIError is a failure reported by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// NotFound reports whether the server does not know the resource.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client is an API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sends token as a bearer token with every call.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New returns a client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrNotConfigured
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Submit uploads a document and returns the created job.
func (c *Client) Submit(ctx context.Context, mdContent, accountID string) (*port.SubmitJobResponse, error) {
	req := port.SubmitJobRequest{MDContent: mdContent, AccountID: accountID}
	var out port.SubmitJobResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/parse", req, &out, "failed to parse file"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preview returns the campaigns the server would create for a document.
func (c *Client) Preview(ctx context.Context, mdContent string) (*port.Preview, error) {
	req := map[string]string{"mdContent": mdContent}
	var out port.Preview
	if err := c.do(ctx, http.MethodPost, "/api/v1/preview", req, &out, "failed to preview file"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status returns the job with its current status.
func (c *Client) Status(ctx context.Context, jobID string) (*domain.CampaignJob, error) {
	var out struct {
		Job *domain.CampaignJob `json:"job"`
	}
	path := "/api/v1/status/" + url.PathEscape(jobID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "failed to fetch job status"); err != nil {
		return nil, err
	}
	if out.Job == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "empty status response"}
	}
	return out.Job, nil
}

// do sends in as JSON and decodes the answer into out. fallback is the
// message used when the server gives none.
func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isNetworkError(err) && ctx.Err() == nil {
			return fmt.Errorf("%w: %w", ErrUnreachable, err)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}
		var msg struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isNetworkError(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &opErr) || errors.As(err, &dnsErr)
}
