package webui

import (
	"fmt"
	"time"
)

// downloadName builds the dated download filename, e.g.
// "September_3_superdispatch.csv". The day carries no leading zero.
func downloadName(now time.Time, suffix, ext string) string {
	return fmt.Sprintf("%s_%d_%s.%s", now.Month().String(), now.Day(), suffix, ext)
}
