package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 day format used everywhere a date is stored.
const DateFormat = "2006-01-02"

// readDateFormat is the permissive form accepted on input ("2025-7-1").
const readDateFormat = "2006-1-2"

// Date is a calendar date with no time-of-day component. The zero value
// means "not set".
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.Time().Date()
	return d
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// Time returns the canonical representation of the day: midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == Date{} }

// Year returns the calendar year.
func (d Date) Year() int { return d.y }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// AddDays returns the date i days later.
func (d Date) AddDays(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonths returns the date n calendar months later. Day-of-month overflow
// normalizes forward: 2024-01-31 plus one month is 2024-03-02.
func (d Date) AddMonths(n int) Date { return NewDate(d.y, d.m+time.Month(n), d.d) }

// AddYears returns the date n calendar years later, with the same
// normalization (2024-02-29 plus one year is 2025-03-01).
func (d Date) AddYears(n int) Date { return NewDate(d.y+n, d.m, d.d) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

// ParseDate parses a Date, accepting single-digit month and day.
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	return DateOf(on), nil
}

// MustParseDate is like ParseDate but panics on error. Test helper.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON writes the date as an ISO string, or "" when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts an ISO string; "" and null mean unset.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
