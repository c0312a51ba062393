package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"syscall"
	"testing"
	"time"

	"github.com/piresc/routefinder/internal/pkg/circuitbreaker"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedBase    string
		expectedTimeout time.Duration
	}{
		{
			name:            "Valid configuration",
			config:          Config{Name: "osrm", BaseURL: "https://router.project-osrm.org", Timeout: 8 * time.Second},
			expectedBase:    "https://router.project-osrm.org",
			expectedTimeout: 8 * time.Second,
		},
		{
			name:            "With trailing slash",
			config:          Config{Name: "nominatim", BaseURL: "https://nominatim.openstreetmap.org/", Timeout: 6 * time.Second},
			expectedBase:    "https://nominatim.openstreetmap.org",
			expectedTimeout: 6 * time.Second,
		},
		{
			name:            "Default timeout",
			config:          Config{BaseURL: "http://localhost:5000"},
			expectedBase:    "http://localhost:5000",
			expectedTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config, logger.NewNopLogger())

			assert.NotNil(t, client)
			assert.Equal(t, tt.expectedBase, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.Timeout())
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Curitiba, PR", r.URL.Query().Get("q"))
		assert.Equal(t, "routefinder-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "success"}`)
	}))
	defer server.Close()

	client := NewClient(Config{Name: "test", BaseURL: server.URL, UserAgent: "routefinder-test"}, logger.NewNopLogger())

	var out struct {
		Status string `json:"status"`
	}
	err := client.GetJSON(context.Background(), "/search", url.Values{"q": {"Curitiba, PR"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "success", out.Status)
}

func TestClient_GetJSON_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusServiceUnavailable)
		fmt.Fprint(w, "maintenance")
	}))
	defer server.Close()

	client := NewClient(Config{Name: "test", BaseURL: server.URL}, logger.NewNopLogger())

	err := client.GetJSON(context.Background(), "/", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, nethttp.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "maintenance", httpErr.Message)
	assert.True(t, IsTransient(err))
}

func TestClient_GetJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	client := NewClient(Config{Name: "test", BaseURL: server.URL}, logger.NewNopLogger())

	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/", nil, &out)

	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, IsTransient(err))
}

func TestClient_GetJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{Name: "slow", BaseURL: server.URL, Timeout: 50 * time.Millisecond}, logger.NewNopLogger())

	start := time.Now()
	err := client.GetJSON(context.Background(), "/", nil, nil)

	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClient_BreakerOpensOnRepeatedServerErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls++
		w.WriteHeader(nethttp.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{Name: "flaky", BaseURL: server.URL}, logger.NewNopLogger())

	for i := 0; i < 5; i++ {
		_ = client.GetJSON(context.Background(), "/", nil, nil)
	}
	err := client.GetJSON(context.Background(), "/", nil, nil)

	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, 5, calls)
	assert.False(t, IsTransient(err))
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "deadline", err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), expected: true},
		{name: "bad gateway", err: &HTTPError{StatusCode: 502}, expected: true},
		{name: "gateway timeout", err: &HTTPError{StatusCode: 504}, expected: true},
		{name: "not found", err: &HTTPError{StatusCode: 404}, expected: false},
		{name: "internal server error", err: &HTTPError{StatusCode: 500}, expected: false},
		{name: "connection refused", err: fmt.Errorf("dial: %w", syscall.ECONNREFUSED), expected: true},
		{name: "connection reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), expected: true},
		{name: "generic", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTransient(tt.err))
		})
	}
}
