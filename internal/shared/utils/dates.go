package utils

import (
	"time"

	"entregas/internal/shared/constants"
)

// ParseDate parses a plain YYYY-MM-DD wire date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateLayout, s)
}

// FormatDate renders a time as a plain YYYY-MM-DD wire date.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// timestampLayouts are the accepted delivery timestamp forms, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	constants.DateLayout,
}

// ParseTimestampOrNow parses an ISO date-time, falling back to the current
// time when the input is empty or unparsable. The fallback mirrors the
// delivery capture flow, where a missing timestamp means "now".
func ParseTimestampOrNow(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
