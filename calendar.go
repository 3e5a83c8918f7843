package datemask

import "strings"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days of month ignoring the year.
// February and unknown months report 29 so that the 29th of February is
// rejected by the year check rather than while the day is typed.
func DaysInMonth(month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		return 29
	}
}

// daysIn is the exact month length once the year is known.
func daysIn(month, year int) int {
	if month == 2 && !IsLeapYear(year) {
		return 28
	}
	return DaysInMonth(month)
}

// numericCap bounds numeric so long digit runs cannot overflow.
const numericCap = 1 << 20

// numeric converts ASCII digits, saturating at numericCap.
func numeric(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
		if n >= numericCap {
			return numericCap
		}
	}
	return n
}

// trimLeadingZeros keeps a lone "0" for an all-zero input.
func trimLeadingZeros(digits string) string {
	t := strings.TrimLeft(digits, "0")
	if t == "" && digits != "" {
		return "0"
	}
	return t
}
