// Package prom implements a Prometheus backend for the metrics package.
//
// It adapts the generic metrics.Backend interface to client_golang
// collectors registered on a private registry, and exposes that registry as
// an http.Handler for scraping. All Prometheus-specific dependencies live
// here so the rest of the project stays decoupled from the metrics system.
package prom

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dispatchcsv/internal/metrics"
)

// Backend is a Prometheus-registry metrics backend.
type Backend struct {
	reg *prometheus.Registry

	requests *prometheus.CounterVec   // convert_requests_total{workflow,status}
	duration *prometheus.HistogramVec // convert_duration_seconds{workflow,status}
	rows     *prometheus.CounterVec   // convert_rows_total{workflow}
}

// NewBackend constructs a backend with the conversion collectors registered.
func NewBackend() *Backend {
	reg := prometheus.NewRegistry()
	b := &Backend{
		reg: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "convert_requests_total",
			Help: "Conversion requests by workflow and outcome.",
		}, []string{"workflow", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "convert_duration_seconds",
			Help:    "End-to-end conversion duration by workflow and outcome.",
			Buckets: prometheus.DefBuckets,
		}, []string{"workflow", "status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "convert_rows_total",
			Help: "Rows produced per workflow.",
		}, []string{"workflow"}),
	}
	reg.MustRegister(b.requests, b.duration, b.rows)
	return b
}

// IncCounter implements metrics.Backend for the known counter names.
// Unknown names are dropped; the interface is intentionally forgiving.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "convert_requests_total":
		b.requests.With(prometheus.Labels{
			"workflow": labels["workflow"],
			"status":   labels["status"],
		}).Add(delta)
	case "convert_rows_total":
		b.rows.With(prometheus.Labels{
			"workflow": labels["workflow"],
		}).Add(delta)
	}
}

// ObserveHistogram implements metrics.Backend.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != "convert_duration_seconds" {
		return
	}
	b.duration.With(prometheus.Labels{
		"workflow": labels["workflow"],
		"status":   labels["status"],
	}).Observe(value)
}

// Handler returns the scrape endpoint for this backend's registry.
func (b *Backend) Handler() http.Handler {
	return promhttp.HandlerFor(b.reg, promhttp.HandlerOpts{})
}
