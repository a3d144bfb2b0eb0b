package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/priroda-razuma/internal/config"
)

// Date is a calendar day without time or zone.
// The zero value is not a valid date; build one with NewDate, Parse or FromTime.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the date or an *InvalidDateError when it does not exist.
func NewDate(year, month, day int) (Date, error) {
	if !IsValidDate(year, month, day) {
		return Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// FromTime takes the calendar day of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Parse reads the canonical YYYY-MM-DD form.
//
// Anything other than three dash-separated unsigned integers, a month outside
// 1..12 or a day outside 1..31 is a *ParseError. A day past the end of its
// month (2023-02-29) is an *InvalidDateError.
func Parse(s string) (Date, error) {
	parts := strings.Split(s, config.DateSeparator)
	if len(parts) != config.DateParts {
		return Date{}, &ParseError{Input: s, Reason: "expected YYYY-MM-DD"}
	}

	var fields [config.DateParts]int
	for i, p := range parts {
		n, err := parseUnsigned(p)
		if err != nil {
			return Date{}, &ParseError{Input: s, Reason: err.Error()}
		}
		fields[i] = n
	}

	year, month, day := fields[0], fields[1], fields[2]
	if month < 1 || month > config.MonthsPerYear {
		return Date{}, &ParseError{Input: s, Reason: "month out of range"}
	}
	if day < 1 || day > 31 {
		return Date{}, &ParseError{Input: s, Reason: "day out of range"}
	}

	return NewDate(year, month, day)
}

func parseUnsigned(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}
	return strconv.Atoi(s)
}

// Format renders YYYY-MM-DD with month and day zero-padded.
func Format(d Date) string {
	return fmt.Sprintf(config.FormatDateISO, d.Year, d.Month, d.Day)
}

// FormatDisplay renders DD.MM.YYYY. The result is never parsed back.
func FormatDisplay(d Date) string {
	return fmt.Sprintf(config.FormatDateDisplay, d.Day, d.Month, d.Year)
}

// DisplayString converts a stored YYYY-MM-DD value for display and returns
// the input unchanged when it cannot be parsed.
func DisplayString(s string) string {
	d, err := Parse(s)
	if err != nil {
		return s
	}
	return FormatDisplay(d)
}

func (d Date) String() string { return Format(d) }

// Display is FormatDisplay as a method.
func (d Date) Display() string { return FormatDisplay(d) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// MarshalText encodes the date in its canonical form, the zero value as "".
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(Format(d)), nil
}

// UnmarshalText accepts what Parse accepts; "" gives the zero value.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compare orders dates by year, then month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// IsValidDate reports whether day exists in (year, month).
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > config.MonthsPerYear {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// IsFutureDate reports whether (year, month, day) is strictly after today.
func IsFutureDate(year, month, day int, today Date) bool {
	return Date{Year: year, Month: month, Day: day}.After(today)
}
