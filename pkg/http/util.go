package http

import (
	"time"

	xutil "TickerGate/pkg/util"
)

// SplitCSV splits a comma-separated query value into trimmed, non-empty parts.
func SplitCSV(s string) []string { return xutil.SplitCSV(s) }

// ParseTime tries RFC3339, RFC3339Nano, date-only, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) { return xutil.ParseTime(s) }

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time { return xutil.ParseTimeDefault(s, def) }
