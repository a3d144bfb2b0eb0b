package calendar

import (
	"fmt"

	"github.com/tartampluch/priroda-razuma/internal/config"
)

// monthOffsets is the per-month term of the day-of-week congruence, indexed by month-1.
var monthOffsets = [config.MonthsPerYear]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeapYear reports whether year has a February 29th in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month (1..12) in year.
// It panics on a month outside 1..12; callers validate first.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		panic(fmt.Sprintf("calendar: month %d out of range 1..12", month))
	}
}

// FirstWeekdayOfMonth returns the weekday of the 1st of month, Monday=0 .. Sunday=6.
// This is the number of blank cells before day 1 in a Monday-first grid.
func FirstWeekdayOfMonth(year, month int) int {
	if month < 1 || month > config.MonthsPerYear {
		panic(fmt.Sprintf("calendar: month %d out of range 1..12", month))
	}

	y := year
	if month < 3 {
		y--
	}

	// 0 = Sunday.
	raw := mod7(y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) + monthOffsets[month-1] + 1)
	return (raw + 6) % config.DaysPerWeek
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod7(n int) int {
	m := n % config.DaysPerWeek
	if m < 0 {
		m += config.DaysPerWeek
	}
	return m
}
