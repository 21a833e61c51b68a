package config

import (
	"testing"
)

/*
TestFromEnv verifies environment variables layer over the defaults and that
malformed values fall back instead of failing startup.
*/
func TestFromEnv(t *testing.T) {
	t.Setenv("DISPATCHCSV_ADDR", ":9999")
	t.Setenv("DISPATCHCSV_MAX_UPLOAD_BYTES", "1024")
	t.Setenv("DISPATCHCSV_METRICS", "false")
	t.Setenv("DISPATCHCSV_LOG_LEVEL", "debug")
	t.Setenv("DISPATCHCSV_LOG_JSON", "not-a-bool")

	cfg := FromEnv()
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("MaxUploadBytes = %d, want 1024", cfg.MaxUploadBytes)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogJSON {
		t.Error("LogJSON = true, want default false for malformed value")
	}
}

/*
TestValidate verifies the static checks: blocking errors for an empty listen
address or non-positive upload cap, warnings for suspicious-but-usable
values, and no findings for the defaults.
*/
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mutate       func(*Config)
		wantErrors   int
		wantWarnings int
	}{
		{
			name:   "defaults_clean",
			mutate: func(*Config) {},
		},
		{
			name:       "empty_addr",
			mutate:     func(c *Config) { c.Addr = "  " },
			wantErrors: 1,
		},
		{
			name:       "zero_upload_cap",
			mutate:     func(c *Config) { c.MaxUploadBytes = 0 },
			wantErrors: 1,
		},
		{
			name:         "huge_upload_cap",
			mutate:       func(c *Config) { c.MaxUploadBytes = 2 << 30 },
			wantWarnings: 1,
		},
		{
			name:         "unknown_log_level",
			mutate:       func(c *Config) { c.LogLevel = "verbose" },
			wantWarnings: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(&cfg)

			issues := Validate(cfg)
			errs := Errors(issues)
			warns := len(issues) - len(errs)

			if len(errs) != tc.wantErrors {
				t.Errorf("errors = %d (%v), want %d", len(errs), issues, tc.wantErrors)
			}
			if warns != tc.wantWarnings {
				t.Errorf("warnings = %d (%v), want %d", warns, issues, tc.wantWarnings)
			}
		})
	}
}

/*
TestIssueError verifies Issue satisfies error with a readable message.
*/
func TestIssueError(t *testing.T) {
	t.Parallel()

	i := Issue{Severity: SeverityError, Path: "addr", Message: "listen address is required"}
	want := "error at addr: listen address is required"
	if got := i.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
