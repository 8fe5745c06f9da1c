package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 8 << 20 // 8MiB
)

// TokenSource supplies the current access token for outbound requests.
// An empty token means no user is authenticated.
type TokenSource interface {
	AccessToken() string
}

// Config configures the storefront API client.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:1111/api/v1.
	BaseURL string
	// HTTPClient executes requests. When nil, a default client with a
	// conservative timeout is used.
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Client is the single point of outbound HTTP communication with the
// storefront API. It attaches bearer authorization where the endpoint
// requires it and converts every failure into a normalized *Error; no raw
// transport error crosses this boundary.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zerolog.Logger
}

// NewClient creates a storefront API client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("api: BaseURL must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api: BaseURL scheme must be http or https")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// SetTokenSource binds the source of the current access token. It must be
// called during wiring, before the first request is dispatched.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) *Error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with an optional JSON body and decodes the
// JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) *Error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) *Error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "encode request body: " + err.Error()}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, bodyReader)
	if err != nil {
		return &Error{Message: "create request: " + err.Error()}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	var token string
	if c.tokens != nil {
		token = c.tokens.AccessToken()
	}
	if value, ok := decideAuthorization(method, path, token); ok {
		req.Header.Set("Authorization", value)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("dispatching API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &Error{Message: "read response body: " + err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
		}

		var errBody errorBody
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Code = errBody.Code
			apiErr.Reason = errBody.Reason
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	// A malformed success body is indistinguishable from a broken transport
	// to the caller, so it carries no status.
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: "decode response body: " + err.Error()}
	}

	return nil
}

// anonymousPaths are endpoints that must never carry authorization.
var anonymousPaths = map[string]bool{
	"auth/login": true,
}

// decideAuthorization returns the Authorization header for a request. The
// login endpoint and GET requests under the public product listing stay
// anonymous; every other request carries a bearer token when one exists.
func decideAuthorization(method, path, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if anonymousPaths[path] {
		return "", false
	}
	if method == http.MethodGet && strings.HasPrefix(path, "products") {
		return "", false
	}

	return "Bearer " + token, true
}
