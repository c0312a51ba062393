package http

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/constants"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/utils"
	locationuc "github.com/piresc/routefinder/services/location/usecase"
	"github.com/piresc/routefinder/services/routing"
	routinguc "github.com/piresc/routefinder/services/routing/usecase"
)

// RouteHandler serves the route form and the planning API
type RouteHandler struct {
	plannerUC    routing.PlannerUC
	destinations []models.Destination
	mapPath      string
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(plannerUC routing.PlannerUC, destinations []models.Destination, mapPath string) *RouteHandler {
	return &RouteHandler{
		plannerUC:    plannerUC,
		destinations: destinations,
		mapPath:      mapPath,
	}
}

// FormPage renders the route request form
func (h *RouteHandler) FormPage(c echo.Context) error {
	var buf bytes.Buffer
	data := struct {
		Destinations []string
		Modes        []models.TravelMode
	}{
		Destinations: constants.DestinationNames(h.destinations),
		Modes:        []models.TravelMode{models.TravelModeCar, models.TravelModeFoot, models.TravelModeBike},
	}
	if err := formTemplate.Execute(&buf, data); err != nil {
		logger.Error("Failed to render form", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to render form")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// PlanRoute handles a route request submitted by the form
func (h *RouteHandler) PlanRoute(c echo.Context) error {
	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	logger.Info("Received route request",
		logger.String("destination", utils.Truncate(req.Destination, 80)),
		logger.Bool("use_device_location", req.UseDeviceLocation),
		logger.String("mode", req.Mode),
		logger.String("client_ip", c.RealIP()))

	summary, err := h.plannerUC.Plan(c.Request().Context(), req)
	if err != nil {
		return planErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route planned", summary)
}

// Map serves the most recent map artifact
func (h *RouteHandler) Map(c echo.Context) error {
	info, err := os.Stat(h.mapPath)
	if err != nil || info.IsDir() {
		return utils.NotFoundResponse(c, "No map has been generated yet")
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.File(h.mapPath)
}

// ListDestinations returns the predefined destination catalogue
func (h *RouteHandler) ListDestinations(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Destinations", h.destinations)
}

func planErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, routinguc.ErrEmptyDestination):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, routinguc.ErrDestinationNotGeocoded),
		errors.Is(err, locationuc.ErrOriginNotGeocoded):
		return utils.UnprocessableResponse(c, err.Error())
	case errors.Is(err, locationuc.ErrLocationUnavailable),
		errors.Is(err, locationuc.ErrNoOrigin):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		logger.Error("Route planning failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to plan route")
	}
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Route finder</title>
<style>
body{font-family:sans-serif;max-width:32rem;margin:2rem auto}
label{display:block;margin-top:1rem}
input[type=text],select{width:100%;padding:.4rem}
#status{margin-top:1rem;white-space:pre-line}
</style>
</head>
<body>
<h1>Route finder</h1>
<form id="route-form">
  <label>Destination
    <input type="text" name="destination" list="destinations" required>
  </label>
  <datalist id="destinations">
    {{range .Destinations}}<option value="{{.}}">{{end}}
  </datalist>
  <label>Origin (leave empty to use your approximate location)
    <input type="text" name="origin">
  </label>
  <label><input type="checkbox" name="use_device_location"> Use device location</label>
  <label>Mode
    <select name="mode">{{range .Modes}}<option value="{{.}}">{{.}}</option>{{end}}</select>
  </label>
  <button type="submit">Show route</button>
</form>
<div id="status"></div>
<script>
document.getElementById("route-form").addEventListener("submit", function (ev) {
  ev.preventDefault();
  var form = ev.target;
  var status = document.getElementById("status");
  status.textContent = "Planning route...";
  fetch("/api/routes", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({
      destination: form.destination.value,
      origin: form.origin.value,
      use_device_location: form.use_device_location.checked,
      mode: form.mode.value
    })
  }).then(function (r) { return r.json(); }).then(function (body) {
    if (!body.success) {
      status.textContent = body.error || body.message;
      return;
    }
    var s = body.data;
    var lines = [];
    if (s.distance_km !== null) {
      lines.push(s.distance_km.toFixed(2) + " km, " + s.duration_min.toFixed(1) + " min (" + s.mode + ")");
    }
    (s.notices || []).forEach(function (n) { lines.push(n); });
    status.textContent = lines.join("\n");
    window.open("/map?r=" + encodeURIComponent(s.request_id), "_blank");
  }).catch(function (err) {
    status.textContent = "Request failed: " + err;
  });
});
</script>
</body>
</html>
`))
