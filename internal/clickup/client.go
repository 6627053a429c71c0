// Package clickup implements the client and data model for the ClickUp REST API.
//
// All endpoint wrappers go through a single request primitive, Do, which
// attaches authentication, encodes the body, and maps failures onto the
// error taxonomy in errors.go. The API token is injected at construction;
// the client never reads ambient process state.
package clickup

// file: internal/clickup/client.go

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/dkoosis/clickup-mcp/internal/logging"
)

// DefaultBaseURL is the ClickUp v2 API root.
const DefaultBaseURL = "https://api.clickup.com/api/v2"

// defaultTimeout bounds each request; expiry surfaces as ErrTimeout.
const defaultTimeout = 30 * time.Second

// Client is a ClickUp API client.
type Client struct {
	apiToken   string
	teamID     string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, primarily for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTeamID sets the default workspace (team) for team-scoped endpoints.
func WithTeamID(id string) Option {
	return func(c *Client) { c.teamID = id }
}

// WithLogger sets the client logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a ClickUp client authenticated with the given API token.
func NewClient(apiToken string, opts ...Option) *Client {
	c := &Client{
		apiToken:   apiToken,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.GetNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TeamID returns the configured default workspace id.
func (c *Client) TeamID() string { return c.teamID }

// clickupErrorBody is the error shape ClickUp returns for failed requests.
type clickupErrorBody struct {
	Err   string `json:"err"`
	ECode string `json:"ECODE"`
}

// Do performs one authenticated request against the ClickUp API and returns
// the raw JSON response body. body, when non-nil, is JSON-encoded. Non-2xx
// responses become *APIError; transport failures are marked ErrTimeout or
// ErrUnreachable.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, query url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", endpoint)
	}
	req.Header.Set("Authorization", c.apiToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	c.logger.Debug("ClickUp request.", "method", method, "endpoint", endpoint, "requestID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("ClickUp request failed.", "endpoint", endpoint, "requestID", requestID, "error", err)
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body from %s", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var parsed clickupErrorBody
		if json.Unmarshal(respBody, &parsed) == nil {
			apiErr.Detail = parsed.Err
			apiErr.Code = parsed.ECode
		}
		c.logger.Debug("ClickUp error response.",
			"endpoint", endpoint, "requestID", requestID, "status", resp.StatusCode, "detail", apiErr.Detail)
		return nil, apiErr
	}

	return json.RawMessage(respBody), nil
}

// get performs a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	raw, err := c.Do(ctx, http.MethodGet, endpoint, nil, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", endpoint)
	}
	return nil
}

// post performs a POST with a JSON body and decodes the response into out
// when out is non-nil.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	raw, err := c.Do(ctx, http.MethodPost, endpoint, body, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", endpoint)
	}
	return nil
}

// put performs a PUT with a JSON body and decodes the response into out
// when out is non-nil.
func (c *Client) put(ctx context.Context, endpoint string, body, out any) error {
	raw, err := c.Do(ctx, http.MethodPut, endpoint, body, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", endpoint)
	}
	return nil
}

// del performs a DELETE, discarding any response body.
func (c *Client) del(ctx context.Context, endpoint string) error {
	_, err := c.Do(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}
