// Package dateformat renders upstream timestamps for display.
package dateformat

import "time"

// UnknownDate is returned when no timestamp is supplied.
const UnknownDate = "Unknown date"

// LongLayout is the display layout, e.g. "March 05, 2024".
const LongLayout = "January 02, 2006"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// LongDate formats an ISO-8601 timestamp as LongLayout in the timestamp's own offset.
// A nil or empty input yields UnknownDate; an unparseable one is returned unchanged.
func LongDate(raw *string) string {
	if raw == nil || *raw == "" {
		return UnknownDate
	}
	t, ok := ParseISO(*raw)
	if !ok {
		return *raw
	}
	return t.Format(LongLayout)
}

// ParseISO tries the accepted ISO-8601 shapes in order.
func ParseISO(raw string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
