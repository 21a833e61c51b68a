// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the conversion service.
//
// It exposes a narrow Backend interface (counters and histograms) with a
// global, pluggable implementation that defaults to a no-op, so metric calls
// are always safe even when no real backend is configured. Concrete systems
// live in subpackages (see prom) and the rest of the codebase depends only
// on this interface.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)       {}
func (nopBackend) ObserveHistogram(string, float64, Labels) {}

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b != nil {
		backend = b
	}
}

// RecordConversion captures the common per-request pattern: one counter and
// one duration observation per conversion, labeled by workflow
// ("superdispatch" or "readable") and outcome, plus a row throughput counter.
func RecordConversion(workflow string, err error, d time.Duration, rows int) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	lbls := Labels{"workflow": workflow, "status": status}
	backend.IncCounter("convert_requests_total", 1, lbls)
	backend.ObserveHistogram("convert_duration_seconds", d.Seconds(), lbls)
	if rows > 0 {
		backend.IncCounter("convert_rows_total", float64(rows), Labels{"workflow": workflow})
	}
}
