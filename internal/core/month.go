package core

import (
	"strings"
	"time"
)

// Month is a calendar-month bucket key: comparable, and ordered
// correctly across year boundaries. It is deliberately not a free-text
// label.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month a date falls in.
func MonthOf(d Date) Month {
	year, month, _ := d.Date()
	return Month{Year: year, Month: month}
}

// ParseMonth parses a "2006-01" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, err
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Before reports whether m is earlier than n.
func (m Month) Before(n Month) bool {
	if m.Year != n.Year {
		return m.Year < n.Year
	}
	return m.Month < n.Month
}

// MarshalJSON encodes the month as its "YYYY-MM" string form.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts a "YYYY-MM" string.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}
	parsed, err := ParseMonth(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
