package calendar

import "strings"

// ValidateBirthDate runs the birth-date field rules in order: required,
// parseable, existing, not in the future. The returned error is
// ErrBirthDateRequired, *ParseError, *InvalidDateError or *FutureDateError.
func ValidateBirthDate(s string, today Date) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrBirthDateRequired
	}

	d, err := Parse(s)
	if err != nil {
		return Date{}, err
	}

	if IsFutureDate(d.Year, d.Month, d.Day, today) {
		return Date{}, &FutureDateError{Date: d, Today: today}
	}
	return d, nil
}
