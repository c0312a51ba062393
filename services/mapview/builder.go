package mapview

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/utils"
)

// DefaultFileName is the artifact written when no path is configured
const DefaultFileName = "map.html"

// Builder renders the route map to a fixed file, overwritten on every request
type Builder struct {
	path   string
	logger *logger.ZapLogger
}

type mapPage struct {
	Origin       [2]float64
	Destination  [2]float64
	Label        string
	Mode         string
	HasRoute     bool
	Polyline     [][2]float64
	DistanceText string
	DurationText string
	StraightText string
}

// NewBuilder creates a builder writing to path
func NewBuilder(path string, l *logger.ZapLogger) (*Builder, error) {
	if path == "" {
		path = DefaultFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid map path %q: %w", path, err)
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Builder{path: abs, logger: l}, nil
}

// Path returns the absolute artifact path
func (b *Builder) Path() string {
	return b.path
}

// Build renders input and returns the artifact path. Without a route only the markers are drawn.
func (b *Builder) Build(input models.MapInput) (string, error) {
	page := mapPage{
		Origin:      point(input.Origin),
		Destination: point(input.Destination),
		Label:       input.Label,
		Mode:        string(input.Mode),
	}

	if input.Route != nil && len(input.Route.Polyline) > 0 {
		page.HasRoute = true
		page.Polyline = make([][2]float64, 0, len(input.Route.Polyline))
		for _, c := range input.Route.Polyline {
			page.Polyline = append(page.Polyline, point(c))
		}
		page.DistanceText = fmt.Sprintf("%.2f km", input.Route.DistanceKm())
		page.DurationText = fmt.Sprintf("%.1f min", input.Route.DurationMin())
	} else {
		page.StraightText = fmt.Sprintf("%.2f km", utils.CalculateDistance(input.Origin, input.Destination))
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to render map: %w", err)
	}

	if err := writeFileAtomic(b.path, buf.Bytes()); err != nil {
		return "", err
	}

	b.logger.Info("Map artifact written",
		logger.String("path", b.path),
		logger.Bool("has_route", page.HasRoute))
	return b.path, nil
}

func point(c models.Coordinate) [2]float64 {
	return [2]float64{c.Latitude, c.Longitude}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create map directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create map file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write map file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace map file: %w", err)
	}
	return nil
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Route to {{.Label}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html,body,#map{height:100%;margin:0}</style>
</head>
<body>
<div id="map"></div>
<div id="origin-popup" hidden><b>Origin</b></div>
<div id="destination-popup" hidden>
  <b>{{.Label}}</b><br>
  {{if .HasRoute}}Distance: {{.DistanceText}}<br>Time: {{.DurationText}}<br>Mode: {{.Mode}}
  {{else}}(route unavailable)<br>Straight line: {{.StraightText}}{{end}}
</div>
<script>
(function () {
  var origin = {{.Origin}};
  var destination = {{.Destination}};
  var line = {{.Polyline}};
  var map = L.map("map");
  L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
    maxZoom: 19,
    attribution: "&copy; OpenStreetMap contributors"
  }).addTo(map);

  function popup(id) {
    var el = document.getElementById(id);
    el.hidden = false;
    return el;
  }

  L.marker(origin, {title: "Origin"}).addTo(map).bindPopup(popup("origin-popup"));
  L.marker(destination, {title: "Destination"}).addTo(map).bindPopup(popup("destination-popup")).openPopup();

  if (line && line.length > 0) {
    var path = L.polyline(line, {color: "blue", weight: 5, opacity: 0.7}).addTo(map);
    map.fitBounds(path.getBounds(), {padding: [30, 30]});
  } else {
    map.fitBounds([origin, destination], {padding: [30, 30]});
  }
})();
</script>
</body>
</html>
`))
