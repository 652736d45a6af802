// Package jcal adapts the Jalali (Persian) calendar used for every stored
// and user-facing date in the catalog.
package jcal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Date is a Jalali calendar date. The zero value is not a valid date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseError reports date text that does not form a Jalali date.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jcal: cannot parse date %q", e.Input)
}

// Today returns the current Jalali date.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime converts a Gregorian instant to its Jalali date.
func FromTime(t time.Time) Date {
	pt := ptime.New(t)
	return Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

// Parse reads a "YYYY/MM/DD" date. Parts may be unpadded.
func Parse(text string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return Date{}, &ParseError{Input: text}
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Date{}, &ParseError{Input: text}
		}
		numbers[i] = value
	}

	d := Date{Year: numbers[0], Month: numbers[1], Day: numbers[2]}
	if d.Year <= 0 || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return Date{}, &ParseError{Input: text}
	}
	// Months 7-11 have 30 days and Esfand 29 or 30; the calendar library
	// normalizes an overflowing day into the next month, which the
	// round-trip comparison catches.
	pt := ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, ptime.Iran())
	if pt.Year() != d.Year || int(pt.Month()) != d.Month || pt.Day() != d.Day {
		return Date{}, &ParseError{Input: text}
	}
	return d, nil
}

// Compare reports -1 when a is before b, 0 when equal, and 1 when after.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	default:
		return sign(a.Day - b.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return Compare(d, other) > 0
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return Compare(d, other) == 0
}

// String renders the zero-padded "YYYY/MM/DD" form used in stored records.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Timestamp renders a Jalali "YYYY/MM/DD - HH:MM" stamp for the instant.
func Timestamp(t time.Time) string {
	pt := ptime.New(t)
	return fmt.Sprintf("%04d/%02d/%02d - %02d:%02d", pt.Year(), int(pt.Month()), pt.Day(), pt.Hour(), pt.Minute())
}

func sign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	default:
		return 0
	}
}
