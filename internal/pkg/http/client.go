package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/piresc/routefinder/internal/pkg/circuitbreaker"
	"github.com/piresc/routefinder/internal/pkg/logger"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// ErrDecode is returned when a response body is not the expected JSON
var ErrDecode = errors.New("malformed response body")

// Config holds the per-upstream client settings
type Config struct {
	Name      string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client is a JSON-over-HTTP client for one third-party upstream
type Client struct {
	name       string
	baseURL    string
	userAgent  string
	httpClient *nethttp.Client
	breaker    *circuitbreaker.CircuitBreaker
	logger     *logger.ZapLogger
}

// NewClient creates a new HTTP client with its own circuit breaker
func NewClient(config Config, l *logger.ZapLogger) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Name == "" {
		config.Name = config.BaseURL
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	breakerCfg := circuitbreaker.DefaultConfig(config.Name)
	breakerCfg.IsFailure = countsAgainstUpstream

	return &Client{
		name:      config.Name,
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		userAgent: config.UserAgent,
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
		breaker: circuitbreaker.New(breakerCfg, l),
		logger:  l,
	}
}

// Name returns the upstream name
func (c *Client) Name() string {
	return c.name
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.getJSON(ctx, endpoint, query, result)
	})
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("Making HTTP request",
		logger.String("service", c.name),
		logger.String("url", reqURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP request completed",
		logger.String("service", c.name),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w from %s: %v", ErrDecode, c.name, err)
	}
	return nil
}

// HTTPError represents a non-2xx upstream response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, nethttp.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("HTTP error: %d %s: %s", e.StatusCode, nethttp.StatusText(e.StatusCode), e.Message)
}

// IsTransient reports whether err is a timeout or a temporarily-unavailable upstream,
// the only failures worth retrying
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case nethttp.StatusBadGateway, nethttp.StatusServiceUnavailable, nethttp.StatusGatewayTimeout:
			return true
		}
		return false
	}

	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}

// countsAgainstUpstream decides what trips the breaker: transient failures and 5xx answers
func countsAgainstUpstream(err error) bool {
	if IsTransient(err) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode >= 500
}
