package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeap(t *testing.T) {
	tests := []struct {
		name string
		year int
		want bool
	}{
		{name: "gregorian common year", year: 1999, want: false},
		{name: "gregorian fourth year", year: 1996, want: true},
		{name: "gregorian century", year: 1900, want: false},
		{name: "gregorian fourth century", year: 2000, want: true},
		{name: "julian century is leap", year: 1500, want: true},
		{name: "julian fourth year", year: 1004, want: true},
		{name: "first julian leap year", year: -45, want: true},
		{name: "triennial misreckoning", year: -42, want: true},
		{name: "triennial off year", year: -44, want: false},
		{name: "last triennial leap year", year: -9, want: true},
		{name: "augustan gap BC", year: -8, want: false},
		{name: "augustan gap AD", year: 4, want: false},
		{name: "leap years resume", year: 8, want: true},
		{name: "before the calendar", year: -46, want: false},
		{name: "before the calendar far", year: -100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsLeap(tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLeap_YearZero(t *testing.T) {
	_, err := IsLeap(0)
	assert.ErrorIs(t, err, ErrYearZero)
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		name  string
		cal   Calendar
		year  int
		month time.Month
		day   int
		want  time.Weekday
	}{
		{
			// the calendar FAQ's own worked example
			name: "2 August 1953", cal: Gregorian,
			year: 1953, month: time.August, day: 2,
			want: time.Sunday,
		},
		{
			name: "1 January 2000", cal: Gregorian,
			year: 2000, month: time.January, day: 1,
			want: time.Saturday,
		},
		{
			name: "julian date", cal: Julian,
			year: 2000, month: time.April, day: 10,
			want: time.Sunday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cal.Weekday(tt.year, tt.month, tt.day))
		})
	}
}

func TestDayNumber(t *testing.T) {
	tests := []struct {
		name  string
		cal   Calendar
		year  int
		month time.Month
		day   int
		want  int
	}{
		{name: "january", cal: Gregorian, year: 2001, month: time.January, day: 31, want: 31},
		{name: "pre-leap-day in leap year", cal: Gregorian, year: 2000, month: time.February, day: 10, want: 41},
		{name: "post-leap-day in leap year", cal: Gregorian, year: 2000, month: time.March, day: 1, want: 61},
		{name: "common year end", cal: Gregorian, year: 2001, month: time.December, day: 31, want: 365},
		{name: "leap year end", cal: Gregorian, year: 2000, month: time.December, day: 31, want: 366},
		{name: "easter 2000", cal: Gregorian, year: 2000, month: time.April, day: 23, want: 114},
		{name: "julian century leap", cal: Julian, year: 1900, month: time.March, day: 1, want: 61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cal.DayNumber(tt.year, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayNumber_BadMonth(t *testing.T) {
	_, err := Gregorian.DayNumber(2000, 13, 1)
	assert.ErrorIs(t, err, ErrBadMonth)
}

func TestEaster(t *testing.T) {
	tests := []struct {
		name string
		cal  Calendar
		year int
		want Date
	}{
		{name: "2000", cal: Gregorian, year: 2000, want: Date{time.April, 23}},
		{name: "2024 march easter", cal: Gregorian, year: 2024, want: Date{time.March, 31}},
		{name: "2025", cal: Gregorian, year: 2025, want: Date{time.April, 20}},
		{name: "epact 25 golden number high", cal: Gregorian, year: 1954, want: Date{time.April, 18}},
		{name: "julian 2000", cal: Julian, year: 2000, want: Date{time.April, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cal.Easter(tt.year))
		})
	}
}

func TestEasterDetail(t *testing.T) {
	d := Gregorian.EasterDetail(2025)

	assert.Equal(t, 12, d.GoldenNumber)
	assert.Equal(t, 30, d.Epact)
	assert.Equal(t, Date{time.April, 13}, d.PaschalMoon)
	assert.Equal(t, time.Sunday, d.MoonWeekday)
	assert.Equal(t, Date{time.April, 20}, d.Easter)
}

// Easter never leaves the window 22 March to 25 April.
func TestEaster_Window(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		d := Gregorian.Easter(year)
		n, err := Gregorian.DayNumber(year, d.Month, d.Day)
		require.NoError(t, err)

		lo, err := Gregorian.DayNumber(year, time.March, 22)
		require.NoError(t, err)
		hi, err := Gregorian.DayNumber(year, time.April, 25)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, n, lo, "year %d", year)
		assert.LessOrEqual(t, n, hi, "year %d", year)
		assert.Equal(t, time.Sunday, Gregorian.Weekday(year, d.Month, d.Day), "year %d", year)
	}
}
