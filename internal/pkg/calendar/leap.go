package calendar

// IsGregorianLeap reports whether year is a leap year under the Gregorian
// rule: divisible by 4, except centuries, except every fourth century.
func IsGregorianLeap(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// IsJulianLeap reports whether year is a leap year under the Julian
// calendar as actually practiced. The nominal rule is every fourth year,
// but the first decades were misreckoned: every third year from 45 BC to
// 9 BC was leap, then Augustus decreed no leap years at all until AD 8.
// Years before 45 BC predate the calendar and are never leap.
func IsJulianLeap(year int) bool {
	if year >= 8 {
		return year%4 == 0
	}
	if year <= -46 {
		return false
	}
	if year > -9 {
		return false
	}
	return (-year)%3 == 0
}

// IsLeap reports whether year is a leap year under the rule in force at
// the time: Gregorian from 1582 on, Julian before. Years BC are negative;
// year 0 does not exist and returns ErrYearZero.
func IsLeap(year int) (bool, error) {
	if year == 0 {
		return false, ErrYearZero
	}
	if year >= 1582 {
		return IsGregorianLeap(year), nil
	}
	return IsJulianLeap(year), nil
}
