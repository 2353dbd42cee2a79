// Package calendar derives render-ready calendar views from goals, habits and
// completion logs. Every function here is pure and safe to call concurrently.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/streaks/internal/constants"
)

// Month identifies one calendar month
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t in t's location
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM string
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

// String formats the month as YYYY-MM
func (m Month) String() string {
	return m.first().Format(constants.MonthFormat)
}

// Title formats the month for headers, e.g. "March 2024"
func (m Month) Title() string {
	return m.first().Format("January 2006")
}

// Next returns the following month
func (m Month) Next() Month {
	return MonthOf(m.first().AddDate(0, 1, 0))
}

// Prev returns the preceding month
func (m Month) Prev() Month {
	return MonthOf(m.first().AddDate(0, -1, 0))
}

// Days returns the month's day keys, see MonthRange
func (m Month) Days() []string {
	return MonthRange(m.Year, m.Month)
}

// FirstWeekday returns the weekday of the month's first day
func (m Month) FirstWeekday() time.Weekday {
	return m.first().Weekday()
}

func (m Month) first() time.Time {
	// Day keys carry no zone, so any fixed location gives the same calendar.
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns every day key (YYYY-MM-DD) of the month in ascending
// order, first and last day included.
func MonthRange(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Normalizes out-of-range months (e.g. 13) the way time.Date does.
	last := first.AddDate(0, 1, -1)

	days := make([]string, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(constants.DateFormat))
	}
	return days
}
