package datefn_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/dash/datefn"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	d := time.Date(2023, 7, 1, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "2023-07-01", datefn.Format(d, "YYYY-MM-DD"))
	assert.Equal(t, "2023-07-01 09:05:03", datefn.Format(d, "YYYY-MM-DD HH:mm:ss"))
	assert.Equal(t, "01/07/2023", datefn.Format(d, "DD/MM/YYYY"))
	assert.Equal(t, "no tokens", datefn.Format(d, "no tokens"))
	assert.Equal(t, "", datefn.Format(time.Time{}, "YYYY-MM-DD"))
}

func TestIsToday(t *testing.T) {
	now := time.Now()
	assert.True(t, datefn.IsToday(now))
	assert.False(t, datefn.IsToday(now.AddDate(0, 0, -1)))
	assert.False(t, datefn.IsToday(now.AddDate(0, 0, 1)))
	assert.False(t, datefn.IsToday(time.Time{}))
}

func TestStartOfDay(t *testing.T) {
	d := time.Date(2023, 7, 1, 23, 59, 59, 1, time.FixedZone("X", 9*3600))
	got := datefn.StartOfDay(d)
	assert.Equal(t, time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2023, 7, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2023, 7, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, datefn.DaysBetween(a, b))
	assert.Equal(t, 3, datefn.DaysBetween(b, a)) // symmetric
	assert.Equal(t, 0, datefn.DaysBetween(a, a))
	assert.Equal(t, 0, datefn.DaysBetween(a, a.Add(30*time.Minute)))
}

func TestDaysBetweenAcrossYears(t *testing.T) {
	a := time.Date(2022, 12, 31, 12, 0, 0, 0, time.UTC)
	b := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, datefn.DaysBetween(a, b))
}
