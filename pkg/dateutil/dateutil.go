package dateutil

import "time"

// SameDay reports whether a and b fall on the same calendar day.
// Only year, month and day are compared; time-of-day is ignored.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfDay returns midnight at the start of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day, in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// DaysInMonth returns the number of days in the given month of the given year.
// Normalization of day 0 in the following month yields the last day of this
// month, so leap years come out right without a lookup table.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WholeMinutesUntil returns the number of whole minutes from `from` to `to`.
// Negative when `to` is in the past. Partial minutes are truncated toward zero.
func WholeMinutesUntil(from, to time.Time) int {
	return int(to.Sub(from).Minutes())
}
