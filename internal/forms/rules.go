// Package forms validates the patient, staff, role and password forms.
//
// Validators return a translation key (see config.TKeyErr*) or "" when the
// value is acceptable. Rendering the key is the caller's job.
package forms

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/pager"
)

var (
	cyrillicName = regexp.MustCompile(config.PatternCyrillicName)
	loginChars   = regexp.MustCompile(config.PatternLoginChars)
	loginLetter  = regexp.MustCompile(config.PatternLoginLetter)
	loginStrip   = regexp.MustCompile(config.PatternLoginStrip)
	passwordSet  = regexp.MustCompile(config.PatternPassword)
	emailFormat  = regexp.MustCompile(config.PatternEmail)
	roleName     = regexp.MustCompile(config.PatternRoleName)
)

func length(s string) int { return utf8.RuneCountInString(s) }

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Name checks a required last or first name.
func Name(v string) string {
	switch {
	case blank(v):
		return config.TKeyErrRequired
	case length(v) < config.NameMinLen:
		return config.TKeyErrNameMin
	case length(v) > config.NameMaxLen:
		return config.TKeyErrNameMax
	case !cyrillicName.MatchString(v):
		return config.TKeyErrCyrillic
	}
	return ""
}

// Patronymic checks the optional patronymic.
func Patronymic(v string) string {
	if v == "" {
		return ""
	}
	switch {
	case length(v) > config.NameMaxLen:
		return config.TKeyErrNameMax
	case !cyrillicName.MatchString(v):
		return config.TKeyErrCyrillic
	}
	return ""
}

// Login checks a staff login: latin letters and digits, at least one letter.
func Login(v string) string {
	switch {
	case v == "":
		return config.TKeyErrRequired
	case length(v) < config.LoginMinLen || length(v) > config.LoginMaxLen:
		return config.TKeyErrLoginLength
	case !loginChars.MatchString(v) || !loginLetter.MatchString(v):
		return config.TKeyErrLoginChars
	}
	return ""
}

// SanitizeLogin drops every character a login may not contain, as the login
// field does while the user types.
func SanitizeLogin(v string) string {
	return loginStrip.ReplaceAllString(v, "")
}

// Password checks a password. When required is false an empty value keeps
// the current password.
func Password(v string, required bool) string {
	if v == "" {
		if required {
			return config.TKeyErrRequired
		}
		return ""
	}
	switch {
	case length(v) < config.PasswordMinLen || length(v) > config.PasswordMaxLen:
		return config.TKeyErrPassLength
	case !passwordSet.MatchString(v):
		return config.TKeyErrPassChars
	}
	return ""
}

// Email checks the optional email.
func Email(v string) string {
	if v == "" {
		return ""
	}
	switch {
	case !emailFormat.MatchString(v):
		return config.TKeyErrEmailFormat
	case length(v) > config.EmailMaxLen:
		return config.TKeyErrEmailMax
	}
	return ""
}

// RoleName checks a role title.
func RoleName(v string) string {
	if blank(v) {
		return config.TKeyErrRequired
	}
	if n := length(v); n < config.RoleNameMinLen || n > config.RoleNameMaxLen || !roleName.MatchString(v) {
		return config.TKeyErrRoleName
	}
	return ""
}

// BirthDate checks the birth-date field against today and returns the parsed
// date with its translation key.
func BirthDate(v string, today calendar.Date) (calendar.Date, string) {
	d, err := calendar.ValidateBirthDate(v, today)
	if err != nil {
		return calendar.Date{}, KeyOf(err)
	}
	return d, ""
}

type translatable interface {
	TranslationKey() string
}

// KeyOf returns the translation key carried by err, or config.TKeyErrUnknown.
func KeyOf(err error) string {
	switch {
	case errors.Is(err, calendar.ErrBirthDateRequired):
		return config.TKeyErrBirthRequired
	case errors.Is(err, pager.ErrPageEmpty):
		return config.TKeyErrPageEmpty
	case errors.Is(err, pager.ErrPageNotNumber):
		return config.TKeyErrPageNumber
	}
	var t translatable
	if errors.As(err, &t) {
		return t.TranslationKey()
	}
	return config.TKeyErrUnknown
}
