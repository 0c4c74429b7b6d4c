// Package types implements special types for the finance backend.
package types

import (
	"fmt"
	"time"
)

// Month is a calendar month key in "YYYY-MM" form.
//
// The representation is fixed width and zero padded, so the natural
// string ordering is chronological ordering. Sorting and filtering
// rely on this, do not change the format.
type Month string

// NewMonth returns the Month for a year and month.
func NewMonth(year int, month time.Month) Month {
	return Month(fmt.Sprintf("%04d-%02d", year, month))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return string(m)
}

// Valid reports whether the month is a well-formed "YYYY-MM" key.
func (m Month) Valid() bool {
	parsed, err := ParseMonth(string(m))
	return err == nil && parsed == m
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return m == ""
}

// Time returns the first instant of the month in UTC.
func (m Month) Time() (time.Time, error) {
	return time.Parse("2006-01", string(m))
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) (Month, error) {
	t, err := m.Time()
	if err != nil {
		return "", err
	}

	return MonthOf(t.AddDate(years, months, 0)), nil
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return string(m) < string(n)
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return string(m) > string(n)
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "text"
}
