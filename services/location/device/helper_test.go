package device

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func runHelper(t *testing.T, timeout time.Duration, open func(h *Helper, pageURL string) error) (models.LocationFix, *Helper) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_loc.json")

	var h *Helper
	h = NewHelper(HelperConfig{
		FixPath: path,
		Timeout: timeout,
		Open:    func(url string) error { return open(h, url) },
	}, logger.NewNopLogger())

	require.NoError(t, h.Run(context.Background()))

	fix, exists, err := NewFixFile(path).Read()
	require.NoError(t, err)
	require.True(t, exists)
	return fix, h
}

func TestHelper_ReportsFix(t *testing.T) {
	fix, _ := runHelper(t, 5*time.Second, func(h *Helper, pageURL string) error {
		resp, err := http.Get(pageURL)
		require.NoError(t, err)
		page, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(page), h.nonce)
		assert.Contains(t, string(page), "getCurrentPosition")

		status := postJSON(t, pageURL+"api/fix", map[string]interface{}{"nonce": h.nonce, "lat": -25.4284, "lon": -49.2733})
		assert.Equal(t, http.StatusNoContent, status)
		return nil
	})

	require.True(t, fix.HasCoordinate())
	assert.Equal(t, models.Coordinate{Latitude: -25.4284, Longitude: -49.2733}, *fix.Coordinate)
}

func TestHelper_ReportsError(t *testing.T) {
	fix, _ := runHelper(t, 5*time.Second, func(h *Helper, pageURL string) error {
		status := postJSON(t, pageURL+"api/error", map[string]interface{}{"nonce": h.nonce, "error": models.FixErrorPermission})
		assert.Equal(t, http.StatusNoContent, status)
		return nil
	})

	assert.False(t, fix.HasCoordinate())
	assert.Equal(t, models.FixErrorPermission, fix.Error)
}

func TestHelper_FirstReportWins(t *testing.T) {
	fix, _ := runHelper(t, 5*time.Second, func(h *Helper, pageURL string) error {
		postJSON(t, pageURL+"api/fix", map[string]interface{}{"nonce": h.nonce, "lat": 10.0, "lon": 20.0})
		postJSON(t, pageURL+"api/error", map[string]interface{}{"nonce": h.nonce, "error": "timeout"})
		return nil
	})

	require.True(t, fix.HasCoordinate())
	assert.Equal(t, 10.0, fix.Coordinate.Latitude)
}

func TestHelper_RejectsForeignNonceThenTimesOut(t *testing.T) {
	fix, _ := runHelper(t, 200*time.Millisecond, func(h *Helper, pageURL string) error {
		status := postJSON(t, pageURL+"api/fix", map[string]interface{}{"nonce": "someone-else", "lat": 1.0, "lon": 2.0})
		assert.Equal(t, http.StatusForbidden, status)
		return nil
	})

	assert.Equal(t, models.FixErrorTimeout, fix.Error)
}

func TestHelper_RejectsInvalidCoordinate(t *testing.T) {
	fix, _ := runHelper(t, 200*time.Millisecond, func(h *Helper, pageURL string) error {
		status := postJSON(t, pageURL+"api/fix", map[string]interface{}{"nonce": h.nonce, "lat": 123.0, "lon": 2.0})
		assert.Equal(t, http.StatusBadRequest, status)
		return nil
	})

	assert.Equal(t, models.FixErrorTimeout, fix.Error)
}

func TestHelper_BrowserFailure(t *testing.T) {
	fix, _ := runHelper(t, 5*time.Second, func(h *Helper, pageURL string) error {
		return errors.New("no browser")
	})

	assert.Equal(t, models.FixErrorBrowserFailed, fix.Error)
}

func TestHelper_ContextCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_loc.json")
	h := NewHelper(HelperConfig{FixPath: path, Timeout: 5 * time.Second}, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	require.NoError(t, h.Run(ctx))

	fix, exists, err := NewFixFile(path).Read()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, models.FixErrorHelperFailed, fix.Error)
}
