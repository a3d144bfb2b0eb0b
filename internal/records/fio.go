package records

import (
	"slices"
	"strings"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FIO is a Russian full name: last name, first name, optional patronymic.
type FIO struct {
	Last       string
	First      string
	Patronymic string
}

// SplitFIO breaks a stored full name into its parts. Words beyond the third
// are kept in the patronymic so nothing is lost on a round trip.
func SplitFIO(fio string) FIO {
	parts := strings.Fields(fio)
	var out FIO
	if len(parts) > 0 {
		out.Last = parts[0]
	}
	if len(parts) > 1 {
		out.First = parts[1]
	}
	if len(parts) > 2 {
		out.Patronymic = strings.Join(parts[2:], config.FIOSeparator)
	}
	return out
}

// String joins the non-blank parts with single spaces.
func (f FIO) String() string {
	return JoinFIO(f.Last, f.First, f.Patronymic)
}

// JoinFIO builds the stored full name, skipping blank parts.
func JoinFIO(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, config.FIOSeparator)
}

// SortBy sorts items in place by key using Russian collation, so "Ёлкин"
// lands next to "Елкин" rather than after "Я". The sort is stable.
func SortBy[T any](items []T, key func(T) string) {
	c := collate.New(language.Russian, collate.IgnoreCase)
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(key(a), key(b))
	})
}

// SortByFIO orders patients alphabetically by full name.
func SortByFIO(patients []Patient) {
	SortBy(patients, func(p Patient) string { return p.FIO })
}
