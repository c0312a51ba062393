package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeSkipped  = "skipped"
)

// Upstream service labels
const (
	ServiceIPAPI     = "ipapi"
	ServiceNominatim = "nominatim"
	ServiceOSRM      = "osrm"
	ServiceDevice    = "device"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routefinder",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Calls made to third-party services by outcome",
	}, []string{"service", "outcome"})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "routefinder",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency of third-party service calls",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
	}, []string{"service"})

	originResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routefinder",
		Subsystem: "origin",
		Name:      "resolutions_total",
		Help:      "Resolved origins by source, or failed when every strategy was exhausted",
	}, []string{"source"})
)

// ObserveUpstream records one third-party call
func ObserveUpstream(service, outcome string, started time.Time) {
	upstreamRequestsTotal.WithLabelValues(service, outcome).Inc()
	upstreamRequestDuration.WithLabelValues(service).Observe(time.Since(started).Seconds())
}

// CountUpstream records a call outcome that has no meaningful latency
func CountUpstream(service, outcome string) {
	upstreamRequestsTotal.WithLabelValues(service, outcome).Inc()
}

// ObserveOrigin records which strategy produced the origin
func ObserveOrigin(source string) {
	originResolutionsTotal.WithLabelValues(source).Inc()
}

// Handler exposes the default registry on an Echo route
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
