package i18n_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/forms"
	"github.com/tartampluch/priroda-razuma/internal/i18n"
	"github.com/tartampluch/priroda-razuma/internal/pager"
)

// translationKeys lists every key referenced from Go code.
var translationKeys = []string{
	config.TKeyAgeYears,
	config.TKeyEvtSummary,
	config.TKeyEvtSummaryAge,
	config.TKeyEvtSummaryBirth,
	config.TKeyPageFooter,
	config.TKeyListEmpty,
	config.TKeyErrBirthRequired,
	config.TKeyErrDateFormat,
	config.TKeyErrDateInvalid,
	config.TKeyErrDateFuture,
	config.TKeyErrPageEmpty,
	config.TKeyErrPageNumber,
	config.TKeyErrPageRange,
	config.TKeyErrRequired,
	config.TKeyErrNameMin,
	config.TKeyErrNameMax,
	config.TKeyErrCyrillic,
	config.TKeyErrLoginLength,
	config.TKeyErrLoginChars,
	config.TKeyErrPassLength,
	config.TKeyErrPassChars,
	config.TKeyErrPassMismatch,
	config.TKeyErrPassSame,
	config.TKeyErrEmailFormat,
	config.TKeyErrEmailMax,
	config.TKeyErrRoleName,
	config.TKeyErrRoleSelect,
	config.TKeyErrUnknown,
	config.TKeyErrLoadPatients,
	config.TKeyErrSessionExpire,
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each locale file, and the other way round.
func TestI18nIntegrity(t *testing.T) {
	defined := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		defined[k] = true
	}

	files, err := filepath.Glob(filepath.Join("locales", "active.*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			content, err := os.ReadFile(path)
			require.NoError(t, err)

			var jsonMap map[string]any
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range defined {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, path)
			}
			for key := range jsonMap {
				if strings.HasPrefix(key, "_") {
					continue
				}
				assert.Truef(t, defined[key], "Key '%s' in %s is not referenced from config.go", key, path)
			}
		})
	}
}

func newTranslator(t *testing.T, lang string) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New(lang)
	require.NoError(t, err)
	return tr
}

func TestNew_Languages(t *testing.T) {
	tr := newTranslator(t, "")
	assert.Equal(t, config.DefaultLanguage, tr.Lang())
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages())
}

func TestMsg(t *testing.T) {
	tr := newTranslator(t, "ru")
	assert.Equal(t, "Неверная дата", tr.Msg(config.TKeyErrDateInvalid))
	assert.Equal(t, "no_such_key", tr.Msg("no_such_key"), "Missing keys fall back to the key")

	tr.SetLanguage("en")
	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "Invalid date", tr.Msg(config.TKeyErrDateInvalid))
}

func TestAge_AgreesWithCalendar(t *testing.T) {
	tr := newTranslator(t, "ru")
	for age := 0; age <= 121; age++ {
		assert.Equalf(t, calendar.FormatAge(age), tr.Age(age), "age %d", age)
	}
}

func TestAge_English(t *testing.T) {
	tr := newTranslator(t, "en")
	assert.Equal(t, "1 year", tr.Age(1))
	assert.Equal(t, "21 years", tr.Age(21))
	assert.Equal(t, "0 years", tr.Age(0))
}

func TestError(t *testing.T) {
	tr := newTranslator(t, "ru")

	_, err := calendar.ValidateBirthDate("2030-01-01", calendar.Date{Year: 2024, Month: 1, Day: 1})
	assert.Equal(t, "Дата рождения не может быть в будущем", tr.Error(err))

	_, err = pager.ParsePageInput("7", 4)
	assert.Equal(t, "Доступно: 1-4", tr.Error(err))

	_, err = pager.ParsePageInput("", 4)
	assert.Equal(t, "Введите номер", tr.Error(err))

	assert.Empty(t, tr.Error(nil))
}

func TestFields(t *testing.T) {
	tr := newTranslator(t, "ru")
	errs := forms.PasswordForm{Old: "old12", New: "new12", Confirm: "x"}.Validate()
	assert.Equal(t, map[string]string{config.FieldConfirm: "Пароли не совпадают"}, tr.Fields(errs))
}

func TestPageFooter(t *testing.T) {
	assert.Equal(t, "Страница 2 из 5", newTranslator(t, "ru").PageFooter(2, 5))
	assert.Equal(t, "Page 2 of 5", newTranslator(t, "en").PageFooter(2, 5))
}

func TestSummary(t *testing.T) {
	tr := newTranslator(t, "ru")
	assert.Equal(t, "День рождения: Иванов Иван (7 лет)", tr.Summary("Иванов Иван", 7, true))
	assert.Equal(t, "День рождения: Иванов Иван (рождение)", tr.Summary("Иванов Иван", 0, true))
	assert.Equal(t, "День рождения: Иванов Иван", tr.Summary("Иванов Иван", 0, false))
	assert.Equal(t, "День рождения: Иванов Иван", tr.Summary("Иванов Иван", -1, true))
}
