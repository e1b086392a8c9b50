// Package display provides the banner and small formatting helpers for
// summary output.
package display

import (
	"fmt"

	"github.com/mirrorsmith/platup/internal/platform"
)

// FormatStats renders a one-line reconciliation summary,
// e.g. "4 kept, 2 renamed, 3 removed".
func FormatStats(s platform.Stats) string {
	return fmt.Sprintf("%d kept, %d renamed, %d removed", s.Kept, s.Renamed, s.Removed)
}

// FormatEntries returns a count with the correct plural,
// e.g. "1 entry" / "5 entries".
func FormatEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
