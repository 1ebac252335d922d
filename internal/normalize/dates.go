package normalize

import (
	"math"
	"strings"
	"time"
)

// ParseDate parses s with an explicit layout. Portal dates are opaque
// strings whose day/month order is not documented, so callers must name
// the layout; an empty layout disables parsing.
func ParseDate(s, layout string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || layout == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ElapsedDays returns the whole days from start to end, rounded up.
func ElapsedDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
