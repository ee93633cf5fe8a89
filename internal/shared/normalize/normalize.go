// Package normalize is the single home for the loose upstream field
// conventions: free-text statuses, booleans that arrive as bool, number or
// string, and timestamps that should compare as calendar dates.
package normalize

import (
	"strings"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusDelivered  Status = "delivered"
)

// OrderStatus maps any upstream status string onto the three display
// states. Matching is case-insensitive; anything unrecognised (including
// empty) is pending.
func OrderStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "delivered", "completed":
		return StatusDelivered
	case "in progress", "inprogress", "processing":
		return StatusInProgress
	default:
		return StatusPending
	}
}

// Label returns the display text for a status.
func (s Status) Label() string {
	switch s {
	case StatusDelivered:
		return "Delivered"
	case StatusInProgress:
		return "In Progress"
	default:
		return "Pending"
	}
}

// Class returns the style class the shell keys its status badge off.
func (s Status) Class() string { return string(s) }

// Flag reports whether a loosely-typed boolean field is set. The upstream
// sends true, 1 or "1" for yes; everything else (including absent, "true"
// and 0) is no. JSON numbers decode as float64, so 1.0 counts as 1.
func Flag(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t == 1
	case int64:
		return t == 1
	case float64:
		return t == 1
	case string:
		return t == "1"
	default:
		return false
	}
}

// DateOnly reduces a timestamp string to its YYYY-MM-DD portion so values
// with a time-of-day component compare equal to plain calendar dates.
// Empty or unrecognisable input comes back trimmed but otherwise untouched.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}
	return s
}
