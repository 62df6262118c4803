// Package timeutil normalizes wall-clock inputs to UTC instants and computes
// the UTC day boundaries used by appointment window queries. Every comparison
// against "now" or a day boundary must happen in this normalized space so
// query results do not depend on the server's timezone.
package timeutil

import "time"

// ToUTC returns the same instant expressed in UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// StartOfDay returns midnight UTC of the day containing t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of the day containing t,
// one nanosecond before the next day's midnight UTC.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// AddDays shifts t by n whole days. The shift is applied in UTC.
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}
