package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block startup.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding worth surfacing that does not have
	// to block startup.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into
// the config (e.g. "max_upload_bytes"); Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static checks over a Config and returns the findings.
// Callers decide whether warnings are fatal.
func Validate(cfg Config) []Issue {
	var issues []Issue

	if strings.TrimSpace(cfg.Addr) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "addr",
			Message:  "listen address is required",
		})
	}
	if cfg.MaxUploadBytes <= 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "max_upload_bytes",
			Message:  "must be positive",
		})
	} else if cfg.MaxUploadBytes > 1<<30 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "max_upload_bytes",
			Message:  "unusually large upload cap (> 1 GiB); uploads are buffered in memory",
		})
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "log_level",
			Message:  fmt.Sprintf("unknown level %q; falling back to info", cfg.LogLevel),
		})
	}
	return issues
}

// Errors filters issues down to hard errors.
func Errors(issues []Issue) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}
