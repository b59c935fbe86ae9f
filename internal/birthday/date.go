package birthday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the textual form of a birthday: day/month/year.
const Layout = "DD/MM/YYYY"

// ErrMalformedDate is returned by [ParseDate] when the input is not a valid
// DD/MM/YYYY calendar date.
var ErrMalformedDate = errors.New("malformed date, expected " + Layout)

// Date is a calendar date without a time component. For birthdays Year is the
// birth year; it does not take part in offset calculation.
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

// ParseDate parses a DD/MM/YYYY string. Single-digit day and month are
// accepted ("1/6/2000"). The day must exist in the given month and year, so
// "29/02/2001" is rejected. Signs and other non-digits are not allowed.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	for _, p := range parts {
		if !digitsOnly(p) {
			return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
	}
	if len(parts[0]) > 2 || len(parts[1]) > 2 || len(parts[2]) != 4 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month out of range in %q", ErrMalformedDate, s)
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return Date{}, fmt.Errorf("%w: day out of range in %q", ErrMalformedDate, s)
	}

	return Date{Day: day, Month: time.Month(month), Year: year}, nil
}

// FromTime takes the calendar date of t in t's location. It is used to turn
// a picked date value into a birthday.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Day: d, Month: m, Year: y}
}

// String formats the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// In re-anchors the day and month to the given year. 29 February becomes
// 28 February in non-leap years.
func (d Date) In(year int) time.Time {
	day := d.Day
	if last := daysIn(d.Month, year); day > last {
		day = last
	}
	return time.Date(year, d.Month, day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
