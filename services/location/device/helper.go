package device

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
)

const maxErrorMarkerLen = 64

// HelperConfig configures the helper side of the device-location flow
type HelperConfig struct {
	FixPath string
	Timeout time.Duration
	// Open shows the permission page to the user
	Open func(url string) error
}

// Helper serves a one-shot page that asks the browser for its position and
// writes the outcome to the handoff file
type Helper struct {
	fixFile *FixFile
	timeout time.Duration
	open    func(url string) error
	nonce   string
	logger  *logger.ZapLogger

	once sync.Once
	done chan struct{}
}

type fixReport struct {
	Nonce string   `json:"nonce"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
}

type errorReport struct {
	Nonce string `json:"nonce"`
	Error string `json:"error"`
}

// NewHelper creates the helper
func NewHelper(config HelperConfig, l *logger.ZapLogger) *Helper {
	if config.Timeout <= 0 {
		config.Timeout = DefaultHelperTimeout
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Helper{
		fixFile: NewFixFile(config.FixPath),
		timeout: config.Timeout,
		open:    config.Open,
		nonce:   uuid.NewString(),
		logger:  l,
		done:    make(chan struct{}),
	}
}

// Run serves the page until a fix or an error has been reported, the safety timer fires, or ctx ends.
// Every path writes exactly one LocationFix.
func (h *Helper) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.report(models.LocationFix{Error: models.FixErrorHelperFailed, ObtainedAt: time.Now()})
			err = fmt.Errorf("location helper panicked: %v", r)
		}
	}()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		h.report(models.LocationFix{Error: models.FixErrorHelperFailed, ObtainedAt: time.Now()})
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := &http.Server{Handler: h.routes()}
	go func() {
		if serveErr := srv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			h.logger.Error("Location helper server failed", logger.Err(serveErr))
			h.report(models.LocationFix{Error: models.FixErrorHelperFailed, ObtainedAt: time.Now()})
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	safety := time.AfterFunc(h.timeout, func() {
		h.report(models.LocationFix{Error: models.FixErrorTimeout, ObtainedAt: time.Now()})
	})
	defer safety.Stop()

	pageURL := fmt.Sprintf("http://%s/", ln.Addr().String())
	h.logger.Info("Location helper waiting for permission", logger.String("url", pageURL))

	if h.open != nil {
		if openErr := h.open(pageURL); openErr != nil {
			h.logger.Error("Failed to open geolocation page", logger.Err(openErr))
			h.report(models.LocationFix{Error: models.FixErrorBrowserFailed, ObtainedAt: time.Now()})
		}
	}

	select {
	case <-h.done:
	case <-ctx.Done():
		h.report(models.LocationFix{Error: models.FixErrorHelperFailed, ObtainedAt: time.Now()})
	}
	return nil
}

// report writes the first outcome only
func (h *Helper) report(fix models.LocationFix) {
	h.once.Do(func() {
		if err := h.fixFile.Write(fix); err != nil {
			h.logger.Error("Failed to write device fix", logger.Err(err))
		}
		close(h.done)
	})
}

func (h *Helper) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/", h.handlePage)
	e.POST("/api/fix", h.handleFix)
	e.POST("/api/error", h.handleError)
	return e
}

func (h *Helper) handlePage(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return permissionPage.Execute(c.Response(), map[string]interface{}{
		"Nonce":     h.nonce,
		"TimeoutMs": 8000,
		"MaxAgeMs":  60000,
	})
}

func (h *Helper) handleFix(c echo.Context) error {
	var req fixReport
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Nonce != h.nonce {
		return echo.NewHTTPError(http.StatusForbidden, "unknown request")
	}
	if req.Lat == nil || req.Lon == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing coordinates")
	}

	coord, err := models.NewCoordinate(*req.Lat, *req.Lon)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.report(models.LocationFix{Coordinate: &coord, ObtainedAt: time.Now()})
	return c.NoContent(http.StatusNoContent)
}

func (h *Helper) handleError(c echo.Context) error {
	var req errorReport
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Nonce != h.nonce {
		return echo.NewHTTPError(http.StatusForbidden, "unknown request")
	}

	marker := req.Error
	if marker == "" || len(marker) > maxErrorMarkerLen {
		marker = models.FixErrorHelperFailed
	}

	h.report(models.LocationFix{Error: marker, ObtainedAt: time.Now()})
	return c.NoContent(http.StatusNoContent)
}

var permissionPage = template.Must(template.New("permission").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Share your location</title>
<style>body{font-family:sans-serif;margin:3em;color:#333}</style>
</head>
<body>
<h3>Requesting your location…</h3>
<p id="status">Allow location access in the browser prompt.</p>
<script>
(function () {
  var nonce = {{.Nonce}};
  function send(path, body) {
    body.nonce = nonce;
    return fetch(path, {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(body)
    }).finally(function () {
      document.getElementById("status").textContent = "Done. You can close this tab.";
      window.close();
    });
  }
  if (!navigator.geolocation) {
    send("/api/error", {error: "geolocation_not_supported"});
    return;
  }
  navigator.geolocation.getCurrentPosition(function (pos) {
    send("/api/fix", {lat: pos.coords.latitude, lon: pos.coords.longitude});
  }, function (err) {
    var reason = "position_unavailable";
    if (err.code === 1) { reason = "permission_denied"; }
    if (err.code === 3) { reason = "timeout"; }
    send("/api/error", {error: reason});
  }, {enableHighAccuracy: true, timeout: {{.TimeoutMs}}, maximumAge: {{.MaxAgeMs}}});
})();
</script>
</body>
</html>
`))
