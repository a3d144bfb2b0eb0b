package calendar

import (
	"fmt"

	"github.com/tartampluch/priroda-razuma/internal/config"
)

// CalculateAge returns the completed years between birth and today.
func CalculateAge(birth, today Date) int {
	age := today.Year - birth.Year
	if today.Month < birth.Month || (today.Month == birth.Month && today.Day < birth.Day) {
		age--
	}
	return age
}

// AgeFromString parses a stored birth date and returns the age on today.
func AgeFromString(birth string, today Date) (int, error) {
	d, err := Parse(birth)
	if err != nil {
		return 0, err
	}
	return CalculateAge(d, today), nil
}

// PluralizeAge picks the Russian noun form agreeing with age:
// "год" (1, 21, 101), "года" (2-4, 22-24), "лет" otherwise (0, 5-20, 111-114).
func PluralizeAge(age int) string {
	if age < 0 {
		age = -age
	}
	mod10, mod100 := age%10, age%100

	switch {
	case mod10 == 1 && mod100 != 11:
		return config.AgeSuffixOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 >= 20):
		return config.AgeSuffixFew
	default:
		return config.AgeSuffixMany
	}
}

// FormatAge renders "24 года" as shown on the patient list.
func FormatAge(age int) string {
	return fmt.Sprintf(config.FormatAge, age, PluralizeAge(age))
}
