package neobookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// AuthPath is the token endpoint every invocation authenticates against.
const AuthPath = "/AuthenticatorRQ"

// statusResponse is implemented by the typed response structs so Post can
// check the upstream Response block without knowing the concrete type.
type statusResponse interface {
	responseInfo() *ResponseInfo
}

// Client performs the two sequential calls of a tool invocation: one
// authentication call and one domain call. It is not safe for concurrent use;
// construct one per invocation.
type Client struct {
	cfg   Config
	http  *http.Client
	log   *slog.Logger
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests to point
// at a mock upstream transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the structured logger for request/response logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient returns a Client for one tool invocation.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{cfg: cfg}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Token returns the bearer token obtained by Authenticate, or "" before it.
func (c *Client) Token() string { return c.token }

// authPayload is the /AuthenticatorRQ request body.
type authPayload struct {
	Request     Envelope    `json:"Request"`
	Credentials Credentials `json:"Credentials"`
}

// Authenticate obtains a bearer token from the token endpoint and stores it
// for subsequent Post calls. A response without a Token is an *AuthError, as
// is any failure of the call itself.
func (c *Client) Authenticate(ctx context.Context, env Envelope) (string, error) {
	payload := authPayload{Request: env, Credentials: c.cfg.Credentials()}

	var out AuthResponse
	if err := c.Post(ctx, AuthPath, payload, &out, false); err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return "", err
		}
		return "", &AuthError{Message: fmt.Sprintf("authentication failed: %v", err)}
	}

	if out.Token == "" {
		return "", &AuthError{Message: "no authentication token received from API"}
	}

	c.token = out.Token
	c.log.Info("authentication successful", "token_length", len(out.Token), "request_id", env.RequestID)

	return out.Token, nil
}

// Post sends payload as JSON to path and decodes the response into out.
// When requireAuth is true the stored bearer token is attached; calling with
// requireAuth before Authenticate succeeded is an *AuthError. Transport
// failures, non-2xx statuses (other than 401), undecodable bodies, and
// upstream Response blocks with a non-200 StatusCode are all *APIError.
func (c *Client) Post(ctx context.Context, path string, payload any, out statusResponse, requireAuth bool) error {
	if requireAuth && c.token == "" {
		return &AuthError{Message: "authentication token required but not set"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("encode request for %s: %v", path, err)}
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &APIError{Message: fmt.Sprintf("create request for %s: %v", path, err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requireAuth {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Info("making API request", "endpoint", path, "has_token", c.token != "")

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("request failed for endpoint %s: %v", path, err)}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on read

	c.log.Info("API response received", "endpoint", path, "status_code", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthError{Message: "authentication failed - invalid token or credentials"}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Message: fmt.Sprintf("endpoint not found: %s", path)}
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &APIError{Message: fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: fmt.Sprintf("failed to parse JSON response: %v", err)}
	}

	return upstreamStatusError(out.responseInfo())
}

// upstreamStatusError converts a non-200 upstream Response block into an
// *APIError. A zero StatusCode means the block was absent and is not checked.
func upstreamStatusError(info *ResponseInfo) error {
	if info == nil || info.StatusCode == 0 || info.StatusCode == 200 {
		return nil
	}

	if len(info.Errors) == 0 {
		return &APIError{Message: fmt.Sprintf("API returned status code %d", info.StatusCode)}
	}

	msgs := make([]string, 0, len(info.Errors))
	for _, e := range info.Errors {
		code := e.Code
		if code == "" {
			code = "UNKNOWN"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", code, e.Description))
	}

	return &APIError{
		Message: "API returned errors: " + strings.Join(msgs, "; "),
		Code:    info.Errors[0].Code,
	}
}
