package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is the authenticated HTTP transport used by the resource clients.
type Client struct {
	baseURL    string
	credential string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     clickup.Logger
	debug      bool
}

// Response is a successful API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger clickup.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a transport for baseURL that sends credential verbatim
// in the Authorization header. Requests are attempted exactly once.
func NewClient(baseURL, credential string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		credential: credential,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// noRetry never schedules another attempt; a cancelled context is reported
// as the error.
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

// Get performs a GET request for path, which is relative to the base URL.
// A non-2xx response returns the Response together with a *clickup.HTTPError.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	target, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing path %q: %w", path, err)
	}

	if target.IsAbs() || target.Host != "" {
		return nil, fmt.Errorf("%w: %s", clickup.ErrAbsolutePath, path)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", c.credential)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	requestID := uuid.NewString()
	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"request_id": requestID,
			"method":     http.MethodGet,
			"path":       path,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, &clickup.TransportError{Method: http.MethodGet, Path: path, Err: err}
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &clickup.TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"request_id": requestID,
			"path":       path,
			"status":     resp.StatusCode,
			"duration":   time.Since(start).String(),
			"bytes":      len(body),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, clickup.NewHTTPError(resp.StatusCode, resp.Status, body)
	}

	return response, nil
}

// Fetch performs a GET request and returns the body of a 2xx response.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// leveledLogger adapts clickup.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger clickup.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

// fields turns alternating keys and values into a field map.
func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)
