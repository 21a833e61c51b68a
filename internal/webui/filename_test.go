package webui

import (
	"testing"
	"time"
)

/*
TestDownloadName verifies the dated filename format: full month name, day of
month without a leading zero, then the workflow suffix and extension.
*/
func TestDownloadName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		now    time.Time
		suffix string
		ext    string
		want   string
	}{
		{
			name:   "single_digit_day",
			now:    time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC),
			suffix: "superdispatch",
			ext:    "csv",
			want:   "September_3_superdispatch.csv",
		},
		{
			name:   "double_digit_day",
			now:    time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC),
			suffix: "readable",
			ext:    "xlsx",
			want:   "December_25_readable.xlsx",
		},
		{
			name:   "first_of_month",
			now:    time.Date(2026, time.January, 1, 23, 59, 0, 0, time.UTC),
			suffix: "superdispatch",
			ext:    "csv",
			want:   "January_1_superdispatch.csv",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := downloadName(tc.now, tc.suffix, tc.ext); got != tc.want {
				t.Fatalf("downloadName = %q, want %q", got, tc.want)
			}
		})
	}
}
