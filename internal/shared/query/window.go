package query

import (
	"fmt"
	"time"
)

// Named feed windows. Each resolves to a lower bound on creation time
// relative to the request's wall clock; the upper bound is always now.
const (
	WindowToday     = "today"
	WindowLastWeek  = "lastWeek"
	WindowLastMonth = "lastMonth"
	WindowLastYear  = "lastYear"
	WindowAllTime   = "allTime"
)

// WindowSince resolves a window name to its lower bound. allTime has none
// and returns nil. Unknown names are rejected so a typo never silently
// widens a feed to everything.
func WindowSince(name string, now time.Time) (*time.Time, error) {
	var since time.Time

	switch name {
	case WindowToday:
		year, month, day := now.Date()
		since = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	case WindowLastWeek:
		since = now.AddDate(0, 0, -7)
	case WindowLastMonth:
		since = now.AddDate(0, -1, 0)
	case WindowLastYear:
		since = now.AddDate(-1, 0, 0)
	case WindowAllTime:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown time filter %q", name)
	}

	return &since, nil
}
