// Package daywindow centralizes calendar-day math so every query and upsert
// groups records by the same day boundaries.
package daywindow

import (
	"fmt"
	"time"
)

// Accepted input formats, tried in order.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse reads a date string in any of the accepted layouts. Bare dates parse
// in UTC at midnight.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q, expected YYYY-MM-DD", s)
}

// Window returns the inclusive [start, end] bounds of the calendar day
// containing t, in t's location. End is 23:59:59.999 to match the stored
// millisecond granularity.
func Window(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
