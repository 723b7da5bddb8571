// Package dates works with calendar dates represented as time.Time values
// at midnight UTC. Every date handed to the stats engine goes through Day
// first so that comparisons and map keys never depend on clock time or zone.
package dates

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates
const Layout = "2006-01-02"

// Day truncates t to its calendar date at midnight UTC
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Parse reads a YYYY-MM-DD date
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Key formats a date for use as a map or storage key
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Number returns the count of days since the Unix epoch
func Number(t time.Time) int64 {
	return Day(t).Unix() / 86400
}

// FromNumber is the inverse of Number
func FromNumber(n int64) time.Time {
	return time.Unix(n*86400, 0).UTC()
}

// AddDays moves d by n calendar days
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// Span returns the number of calendar days in [start, end], or 0 when end is before start
func Span(start, end time.Time) int {
	n := Number(end) - Number(start) + 1
	if n < 0 {
		return 0
	}
	return int(n)
}

// Each returns every date in [start, end] in chronological order
func Each(start, end time.Time) []time.Time {
	n := Span(start, end)
	days := make([]time.Time, 0, n)
	first := Day(start)
	for i := 0; i < n; i++ {
		days = append(days, AddDays(first, i))
	}
	return days
}

// InRange reports whether d falls in the closed interval [start, end]
func InRange(d, start, end time.Time) bool {
	n := Number(d)
	return n >= Number(start) && n <= Number(end)
}

// MonthRange returns the first and last date of a calendar month
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := Date(year, month, 1)
	return start, start.AddDate(0, 1, -1)
}

// YearRange returns the first and last date of a calendar year
func YearRange(year int) (time.Time, time.Time) {
	return Date(year, time.January, 1), Date(year, time.December, 31)
}

// DaysInMonth returns the length of a calendar month
func DaysInMonth(year int, month time.Month) int {
	start, end := MonthRange(year, month)
	return Span(start, end)
}

// DaysInYear returns 365 or 366
func DaysInYear(year int) int {
	start, end := YearRange(year)
	return Span(start, end)
}

// WeekStart returns the Monday on or before d
func WeekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return AddDays(Day(d), -offset)
}
