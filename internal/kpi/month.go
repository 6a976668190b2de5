package kpi

import (
	"fmt"
	"time"
)

// Month is a calendar month used by the attendance aggregator.
type Month struct {
	Year  int
	Month time.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%02d-%04d", int(m.Month), m.Year)
}

// Bounds returns the first and last day of the month, inclusive.
func (m Month) Bounds() (time.Time, time.Time) {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// ParseMonth reads a month selector in "MM-YYYY" form, falling back to
// "YYYY-MM". Anything unparseable yields the current month rather than an
// error so a stale or garbled query string never breaks the report page.
func ParseMonth(input string, now func() time.Time) Month {
	if t, err := time.Parse("01-2006", input); err == nil {
		return Month{Year: t.Year(), Month: t.Month()}
	}
	if t, err := time.Parse("2006-01", input); err == nil {
		return Month{Year: t.Year(), Month: t.Month()}
	}
	t := now()
	return Month{Year: t.Year(), Month: t.Month()}
}

// MonthNav holds the prev/next selectors the report UI links to.
type MonthNav struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

// Nav computes the adjacent month selectors, wrapping across year
// boundaries (January back to December, December forward to January).
func (m Month) Nav() MonthNav {
	first, _ := m.Bounds()
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	return MonthNav{
		Prev: Month{Year: prev.Year(), Month: prev.Month()}.String(),
		Next: Month{Year: next.Year(), Month: next.Month()}.String(),
	}
}
