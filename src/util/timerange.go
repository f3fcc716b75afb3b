package util

import "time"

// ResolveStartDate maps a symbolic time range token to the inclusive lower
// date boundary for queries, measured against now. The boolean is false when
// no lower bound applies: "custom", "all", and anything unrecognized include
// the full history. Queries never carry an upper bound.
//
// "week" is a rolling 7-day window; the other tokens align to calendar
// boundaries in the server's timezone.
func ResolveStartDate(token string, now time.Time) (time.Time, bool) {
	switch token {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case "week":
		return now.Add(-7 * 24 * time.Hour), true
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case "quarter":
		start := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), start, 1, 0, 0, 0, 0, now.Location()), true
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}
