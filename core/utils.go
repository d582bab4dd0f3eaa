package core

import (
	"strings"
	"time"
)

const (
	// DateLayout is the wire format of all calendar dates; no time-of-day component.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of attendance check-in/out times; no date, no timezone.
	TimeLayout = "15:04"

	// UnknownStudent is rendered for a dangling student id; lookup misses are
	// display sentinels, never errors.
	UnknownStudent = "Unknown"
)

// Today returns the current calendar date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsFold reports whether substr is within s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
