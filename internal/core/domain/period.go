package domain

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month. Reports work at this granularity.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

const yearMonthLayout = "2006-01"

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// Valid reports whether the month is 1..12 and the year is in a sane range.
func (ym YearMonth) Valid() bool {
	return ym.Month >= 1 && ym.Month <= 12 && ym.Year >= 1900 && ym.Year <= 9999
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// FirstDay is midnight UTC of the first day of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay is midnight UTC of the last day of the month.
func (ym YearMonth) LastDay() time.Time {
	return ym.FirstDay().AddDate(0, 1, -1)
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	return YearMonthOf(ym.FirstDay().AddDate(0, 1, 0))
}

// index is a monotonically increasing month counter used for comparisons.
func (ym YearMonth) index() int {
	return ym.Year*12 + (ym.Month - 1)
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool {
	return ym.index() > other.index()
}

// MonthsBetween counts the months in the inclusive range [start, end].
// It returns 0 when end is before start.
func MonthsBetween(start, end YearMonth) int {
	n := end.index() - start.index() + 1
	if n < 0 {
		return 0
	}
	return n
}

// MonthRange lists every month of the inclusive range [start, end].
func MonthRange(start, end YearMonth) []YearMonth {
	months := make([]YearMonth, 0, MonthsBetween(start, end))
	for m := start; !m.After(end); m = m.Next() {
		months = append(months, m)
	}
	return months
}
