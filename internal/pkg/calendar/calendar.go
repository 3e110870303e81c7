// Package calendar implements calendrical calculations: leap year rules
// (Gregorian, Julian, and the historical Roman bookkeeping between 45 BC
// and AD 8), day-of-week and day-of-year computation, and the date of
// Easter by the Golden Number / Epact method.
//
// Formulas follow the calendar FAQ maintained by Claus Tondering.
// Years BC are represented as negative numbers; there is no year zero.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrYearZero is returned for year 0, which does not exist.
	ErrYearZero = errors.New("calendar: there is no year zero")

	// ErrBadMonth is returned for months outside 1..12.
	ErrBadMonth = errors.New("calendar: no such month")
)

// Calendar selects the rule set used for a computation.
type Calendar int

const (
	// Gregorian is the calendar in civil use since 1582.
	Gregorian Calendar = iota

	// Julian is the calendar in use before the Gregorian reform; it
	// remains the basis of the Eastern computus.
	Julian
)

func (c Calendar) String() string {
	switch c {
	case Gregorian:
		return "gregorian"
	case Julian:
		return "julian"
	default:
		return fmt.Sprintf("calendar(%d)", int(c))
	}
}

// Date is a month/day pair within some year.
type Date struct {
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d", int(d.Month), d.Day)
}

// cumulative days before the start of each month in a common year
var daysBefore = [...]int{
	time.January:   0,
	time.February:  31,
	time.March:     31 + 28,
	time.April:     31 + 28 + 31,
	time.May:       31 + 28 + 31 + 30,
	time.June:      31 + 28 + 31 + 30 + 31,
	time.July:      31 + 28 + 31 + 30 + 31 + 30,
	time.August:    31 + 28 + 31 + 30 + 31 + 30 + 31,
	time.September: 31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	time.October:   31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	time.November:  31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	time.December:  31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
}

// Weekday returns the day of the week the given date falls on, using
// Tondering's congruence. The divisions are integer divisions.
func (c Calendar) Weekday(year int, month time.Month, day int) time.Weekday {
	a := (14 - int(month)) / 12
	y := year - a
	m := int(month) + 12*a - 2

	var d int
	if c == Julian {
		d = (5 + day + y + y/4 + (31*m)/12) % 7
	} else {
		d = (day + y + y/4 - y/100 + y/400 + (31*m)/12) % 7
	}
	if d < 0 {
		d += 7
	}
	return time.Weekday(d)
}

// DayNumber returns the day number of the year, counting 1 January as 1.
// Returns ErrBadMonth for months outside 1..12.
func (c Calendar) DayNumber(year int, month time.Month, day int) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: %d", ErrBadMonth, int(month))
	}

	n := daysBefore[month] + day
	if month > time.February && c.isLeapArithmetic(year) {
		n++
	}
	return n, nil
}

// isLeapArithmetic applies the plain divisibility rule for the calendar,
// with no historical adjustments. Used for day counts within a year.
func (c Calendar) isLeapArithmetic(year int) bool {
	if c == Julian {
		return year%4 == 0
	}
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}
