package core

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form all dates are stored in. Zero-padding
// keeps lexicographic comparison equivalent to chronological comparison.
const DateLayout = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Today returns the current UTC date in DateLayout form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// WithinDateRange reports whether date falls in the inclusive [start, end]
// window. An empty bound is unbounded on that side.
func WithinDateRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}
