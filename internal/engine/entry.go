package engine

import (
	"github.com/tartampluch/priroda-razuma/internal/calendar"
)

// PatientEntry is a patient with a valid birth date, as shown in the
// upcoming-birthdays list and served by the feed API.
type PatientEntry struct {
	// UID is stable across syncs for the same patient and birth date.
	UID string `json:"uid"`

	ID        int           `json:"id"`
	FIO       string        `json:"fio"`
	BirthDate calendar.Date `json:"date_of_birth"`

	// NextOccurrence is today or the next birthday after today.
	NextOccurrence calendar.Date `json:"next_birthday"`

	// Age is the completed years today; AgeNext is reached on NextOccurrence.
	Age      int    `json:"age"`
	AgeNext  int    `json:"age_next"`
	AgeLabel string `json:"age_label"`
}

// IsToday reports whether the birthday falls on today.
func (e PatientEntry) IsToday(today calendar.Date) bool {
	return e.NextOccurrence == today
}
