package datefn

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Format substitutes the tokens YYYY, MM, DD, HH, mm, ss in pattern with
// the zero-padded components of t. The zero time formats to "".
func Format(t time.Time, pattern string) string {
	if t.IsZero() {
		return ""
	}
	return strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", t.Year()),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"DD", fmt.Sprintf("%02d", t.Day()),
		"HH", fmt.Sprintf("%02d", t.Hour()),
		"mm", fmt.Sprintf("%02d", t.Minute()),
		"ss", fmt.Sprintf("%02d", t.Second()),
	).Replace(pattern)
}

// IsToday reports whether t falls on the current calendar day in t's
// location.
func IsToday(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := time.Now().In(t.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates t to midnight of its calendar day, keeping the
// calendar components but placing them in UTC so that day arithmetic is
// unaffected by DST transitions.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the absolute number of whole calendar days between
// a and b. It is symmetric, and zero when both fall on the same day.
func DaysBetween(a, b time.Time) int {
	am, bm := StartOfDay(a), StartOfDay(b)
	if bm.Before(am) {
		am, bm = bm, am
	}
	ts := timespan.BetweenTimes(am, bm)
	return int(ts.Duration() / (24 * time.Hour))
}
