// Package config defines the server configuration model plus a lightweight
// static validator. Values come from defaults, then environment variables
// (DISPATCHCSV_*), then command-line flags applied by the caller.
package config

import (
	"os"
	"strconv"
)

// Config controls the conversion server.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// MaxUploadBytes caps the size of an uploaded spreadsheet.
	MaxUploadBytes int64

	// MetricsEnabled exposes the Prometheus registry on /metrics.
	MetricsEnabled bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogJSON switches the log handler to JSON output.
	LogJSON bool
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Addr:           ":8080",
		MaxUploadBytes: 32 << 20, // 32 MiB
		MetricsEnabled: true,
		LogLevel:       "info",
	}
}

// FromEnv layers DISPATCHCSV_* environment variables over Default.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv("DISPATCHCSV_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DISPATCHCSV_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("DISPATCHCSV_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MetricsEnabled = b
		}
	}
	if v := os.Getenv("DISPATCHCSV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DISPATCHCSV_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogJSON = b
		}
	}
	return cfg
}
