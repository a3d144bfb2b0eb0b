package calendar

import "github.com/tartampluch/priroda-razuma/internal/config"

// Cell is one slot of the date-picker grid. Day is 0 for leading and trailing blanks.
type Cell struct {
	Day        int
	Today      bool
	Selectable bool
}

// InMonth reports whether the cell holds a day of the displayed month.
func (c Cell) InMonth() bool { return c.Day > 0 }

// Grid is a Monday-first month layout.
type Grid struct {
	Year  int
	Month int
	Lead  int // blank cells before day 1
	Days  int
	Rows  [][config.DaysPerWeek]Cell
}

// MonthGrid lays out (year, month) in weeks. Days after today are not selectable,
// since a birth date cannot be in the future.
func MonthGrid(year, month int, today Date) Grid {
	days := DaysInMonth(year, month)
	lead := FirstWeekdayOfMonth(year, month)
	rows := (days + lead + config.DaysPerWeek - 1) / config.DaysPerWeek

	g := Grid{
		Year:  year,
		Month: month,
		Lead:  lead,
		Days:  days,
		Rows:  make([][config.DaysPerWeek]Cell, rows),
	}

	for i := range g.Rows {
		for j := range config.DaysPerWeek {
			day := i*config.DaysPerWeek + j - lead + 1
			if day < 1 || day > days {
				continue
			}
			d := Date{Year: year, Month: month, Day: day}
			g.Rows[i][j] = Cell{
				Day:        day,
				Today:      d == today,
				Selectable: !d.After(today),
			}
		}
	}
	return g
}

// ShiftMonth moves (year, month) by delta months, carrying into the year.
func ShiftMonth(year, month, delta int) (int, int) {
	idx := year*config.MonthsPerYear + (month - 1) + delta
	y := floorDiv(idx, config.MonthsPerYear)
	return y, idx - y*config.MonthsPerYear + 1
}

// YearRange lists the years offered by the birth-date picker, newest first.
func YearRange(today Date, span int) []int {
	if span < 0 {
		span = 0
	}
	years := make([]int, 0, span+1)
	for y := today.Year; y >= today.Year-span; y-- {
		years = append(years, y)
	}
	return years
}

// ClampDay keeps a selected day inside the month after navigation
// (31 January -> 28/29 February).
func ClampDay(year, month, day int) int {
	if n := DaysInMonth(year, month); day > n {
		return n
	}
	if day < 1 {
		return 1
	}
	return day
}
