package calendar

import "time"

// paschalMoon maps an epact 1..30 to the official full moon date.
// Index 0 is unused. Epact 25 is ambiguous (17 or 18 April) and resolved
// by golden number in Easter.
var paschalMoon = [...]Date{
	{}, // epact 0 unused
	{time.April, 12}, {time.April, 11}, {time.April, 10}, {time.April, 9},
	{time.April, 8}, {time.April, 7}, {time.April, 6}, {time.April, 5},
	{time.April, 4}, {time.April, 3}, {time.April, 2}, {time.April, 1},
	{time.March, 31}, {time.March, 30}, {time.March, 29}, {time.March, 28},
	{time.March, 27}, {time.March, 26}, {time.March, 25}, {time.March, 24},
	{time.March, 23}, {time.March, 22}, {time.March, 21}, {time.April, 18},
	{time.April, 18}, {time.April, 17}, {time.April, 16}, {time.April, 15},
	{time.April, 14}, {time.April, 13},
}

// GoldenNumber returns the year's position in the 19-year Metonic cycle,
// a number from 1 to 19. New moons fall on roughly the same dates in two
// years with the same golden number.
func GoldenNumber(year int) int {
	return year%19 + 1
}

// century as the epact tables count it: 20 for the years 1900-1999.
func century(year int) int {
	return year/100 + 1
}

// Epact returns the age of the official moon, from 1 to 30. Under the
// Julian rule this is the plain Metonic relationship; the Gregorian rule
// corrects it for the dropped century leap days and for the slow drift of
// the Metonic cycle, then shifts it to count from 1 January.
func (c Calendar) Epact(year int) int {
	ept := (11 * (GoldenNumber(year) - 1)) % 30
	if c != Julian {
		ept -= (3 * century(year)) / 4
		ept += (8*century(year) + 5) / 25
		ept += 8
	}
	for ept < 1 {
		ept += 30
	}
	for ept > 30 {
		ept -= 30
	}
	return ept
}

// EasterDetail carries the intermediate quantities of the computus along
// with the result, for verbose reporting.
type EasterDetail struct {
	GoldenNumber int
	Epact        int
	PaschalMoon  Date
	MoonWeekday  time.Weekday
	Easter       Date
}

// Easter returns the date of Easter Sunday in the given year: the first
// Sunday strictly after the official (Paschal) full moon. If the moon
// falls on a Sunday, Easter is the Sunday after.
func (c Calendar) Easter(year int) Date {
	return c.EasterDetail(year).Easter
}

// EasterDetail computes Easter along with the golden number, epact and
// Paschal full moon that produce it.
func (c Calendar) EasterDetail(year int) EasterDetail {
	ept := c.Epact(year)
	if c == Julian {
		// shift to the age of the moon on 1 January; the Gregorian
		// epact already includes this
		ept += 8
		if ept > 30 {
			ept -= 30
		}
	}

	moon := paschalMoon[ept]
	if ept == 25 && GoldenNumber(year) > 11 {
		moon = Date{time.April, 17}
	}

	wd := c.Weekday(year, moon.Month, moon.Day)
	easter := Date{moon.Month, moon.Day + (7 - int(wd))}
	if easter.Day > 31 {
		easter.Month++
		easter.Day -= 31
	}

	return EasterDetail{
		GoldenNumber: GoldenNumber(year),
		Epact:        ept,
		PaschalMoon:  moon,
		MoonWeekday:  wd,
		Easter:       easter,
	}
}
