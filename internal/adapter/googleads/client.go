// Package googleads is a minimal Google Ads REST client covering the
// mutations needed to create paused search campaigns.
package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

const (
	DefaultBaseURL    = "https://googleads.googleapis.com"
	DefaultAPIVersion = "v17"
	DefaultTokenURL   = "https://oauth2.googleapis.com/token"
	DefaultTimeout    = 30 * time.Second
	DefaultRateLimit  = 5
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("google ads API error: %s (%s, status %d, endpoint: %s)", e.Message, e.Status, e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("google ads API error: %s (status %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Client creates resources in customer accounts. It implements
// port.AdsService.
type Client struct {
	baseURL         string
	apiVersion      string
	developerToken  string
	loginCustomerID string
	httpClient      *http.Client
	limiter         *rate.Limiter
	logger          *slog.Logger
}

var _ port.AdsService = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithAPIVersion sets the API version path segment, e.g. "v17".
func WithAPIVersion(version string) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithLoginCustomerID sets the manager account sent with every call.
func WithLoginCustomerID(id string) ClientOption {
	return func(c *Client) {
		c.loginCustomerID = normalizeCustomerID(id)
	}
}

// WithHTTPClient sets the HTTP client. It must attach authorization itself.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond float64) ClientOption {
	return func(c *Client) {
		burst := max(int(requestsPerSecond), 1)
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithLogger sets a logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client sending developerToken with every call.
func NewClient(developerToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:        DefaultBaseURL,
		apiVersion:     DefaultAPIVersion,
		developerToken: developerToken,
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		limiter:        rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateBudget implements port.AdsService.
func (c *Client) CreateBudget(ctx context.Context, accountID string, budget domain.BudgetSpec) (string, error) {
	return c.mutate(ctx, accountID, "campaignBudgets", toBudget(budget))
}

// CreateCampaign implements port.AdsService.
func (c *Client) CreateCampaign(ctx context.Context, accountID string, spec domain.CampaignSpec) (string, error) {
	body, err := toCampaign(spec)
	if err != nil {
		return "", err
	}
	return c.mutate(ctx, accountID, "campaigns", body)
}

// CreateCriterion implements port.AdsService.
func (c *Client) CreateCriterion(ctx context.Context, accountID string, spec domain.CriterionSpec) error {
	body, err := toCriterion(spec)
	if err != nil {
		return err
	}
	_, err = c.mutate(ctx, accountID, "campaignCriteria", body)
	return err
}

// mutate creates one resource and returns its resource name.
func (c *Client) mutate(ctx context.Context, accountID, resource string, create any) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	path := fmt.Sprintf("/%s/customers/%s/%s:mutate", c.apiVersion, normalizeCustomerID(accountID), resource)
	payload, err := json.Marshal(mutateRequest{Operations: []operation{{Create: create}}})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	c.logger.DebugContext(ctx, "google ads request", slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp.StatusCode, path, body)
	}

	var out mutateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Results) == 0 || out.Results[0].ResourceName == "" {
		return "", fmt.Errorf("empty mutate response from %s", path)
	}
	return out.Results[0].ResourceName, nil
}

// normalizeCustomerID strips the dashes of the "123-456-7890" display form.
func normalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// Connector builds OAuth2-authorized clients from per-job credentials. It
// implements port.AdsConnector.
type Connector struct {
	tokenURL string
	base     *http.Client
	opts     []ClientOption
}

var _ port.AdsConnector = (*Connector)(nil)

// NewConnector returns a Connector refreshing tokens at tokenURL. base is
// used for both token and API calls; nil selects a client with
// DefaultTimeout. opts are applied to every client built.
func NewConnector(tokenURL string, base *http.Client, opts ...ClientOption) *Connector {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if base == nil {
		base = &http.Client{Timeout: DefaultTimeout}
	}
	return &Connector{tokenURL: tokenURL, base: base, opts: opts}
}

// Connect implements port.AdsConnector. No network call is made until the
// first mutation, which triggers the token refresh.
func (c *Connector) Connect(ctx context.Context, creds domain.Credentials) (port.AdsService, error) {
	if creds.RefreshToken == "" || creds.DeveloperToken == "" {
		return nil, fmt.Errorf("%w: refresh and developer tokens are required", port.ErrCredentials)
	}

	cfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: c.tokenURL},
		Scopes:       []string{"https://www.googleapis.com/auth/adwords"},
	}
	tokenCtx := context.WithValue(context.WithoutCancel(ctx), oauth2.HTTPClient, c.base)
	source := cfg.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	httpClient := &http.Client{
		Timeout: c.base.Timeout,
		Transport: &oauth2.Transport{
			Source: source,
			Base:   c.base.Transport,
		},
	}

	opts := append([]ClientOption{WithHTTPClient(httpClient)}, c.opts...)
	return NewClient(creds.DeveloperToken, opts...), nil
}
