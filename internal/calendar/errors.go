package calendar

import (
	"errors"
	"fmt"

	"github.com/tartampluch/priroda-razuma/internal/config"
)

// ErrBirthDateRequired is returned by ValidateBirthDate for a blank field.
var ErrBirthDateRequired = errors.New(config.ErrBirthRequired)

// ParseError reports input that is not three dash-separated integers,
// or whose month or day is out of range.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", config.ErrDateParse, e.Input)
	}
	return fmt.Sprintf("%s: %q: %s", config.ErrDateParse, e.Input, e.Reason)
}

// TranslationKey returns the i18n message for the form field.
func (e *ParseError) TranslationKey() string { return config.TKeyErrDateFormat }

// InvalidDateError reports a day that does not exist in its month.
type InvalidDateError struct {
	Year, Month, Day int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: %d-%02d-%02d", config.ErrDateInvalid, e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) TranslationKey() string { return config.TKeyErrDateInvalid }

// FutureDateError reports a birth date after today.
type FutureDateError struct {
	Date  Date
	Today Date
}

func (e *FutureDateError) Error() string {
	return fmt.Sprintf("%s: %s > %s", config.ErrDateFuture, e.Date, e.Today)
}

func (e *FutureDateError) TranslationKey() string { return config.TKeyErrDateFuture }
