// Package i18n renders user-facing messages from the embedded locale files.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/forms"
	"github.com/tartampluch/priroda-razuma/internal/pager"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Translator looks up messages for one active language. It is safe for
// concurrent use.
type Translator struct {
	bundle    *goi18n.Bundle
	languages []string

	mu        sync.RWMutex
	lang      string
	localizer *goi18n.Localizer
}

// New loads every embedded locale and activates lang, falling back to
// config.DefaultLanguage when lang is empty.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if code == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detected = append(detected, code)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
		)
	}
	slices.Sort(detected)

	t := &Translator{bundle: bundle, languages: detected}
	t.SetLanguage(lang)
	return t, nil
}

// Languages lists the loaded locale codes.
func (t *Translator) Languages() []string {
	return slices.Clone(t.languages)
}

// Lang returns the active language.
func (t *Translator) Lang() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lang = lang
	t.localizer = goi18n.NewLocalizer(t.bundle, lang, config.DefaultLanguage)
}

func (t *Translator) localize(lc *goi18n.LocalizeConfig) string {
	t.mu.RLock()
	loc := t.localizer
	t.mu.RUnlock()

	msg, err := loc.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return lc.MessageID
	}
	return msg
}

// Msg translates key. Missing keys come back unchanged.
func (t *Translator) Msg(key string) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: key})
}

// Format translates key with template data.
func (t *Translator) Format(key string, data map[string]any) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// Plural translates a message with CLDR plural forms selected by count.
func (t *Translator) Plural(key string, count int) string {
	return t.localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

// Age renders an age with the right plural form, e.g. "21 год".
func (t *Translator) Age(years int) string {
	return t.Plural(config.TKeyAgeYears, years)
}

// PageFooter renders "page N of M".
func (t *Translator) PageFooter(page, count int) string {
	return t.Format(config.TKeyPageFooter, map[string]any{"Page": page, "Count": count})
}

// Error renders a validation error for the user.
func (t *Translator) Error(err error) string {
	if err == nil {
		return ""
	}
	var re *pager.PageRangeError
	if errors.As(err, &re) {
		return t.Format(config.TKeyErrPageRange, map[string]any{"Count": re.Count})
	}
	return t.Msg(forms.KeyOf(err))
}

// Fields renders every failed field of a form.
func (t *Translator) Fields(errs forms.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, key := range errs {
		out[field] = t.Msg(key)
	}
	return out
}

// Summary renders the title of a birthday event. age is the age reached on
// that occurrence; yearKnown is false when only the day and month are known.
func (t *Translator) Summary(name string, age int, yearKnown bool) string {
	switch {
	case !yearKnown || age < 0:
		return t.Format(config.TKeyEvtSummary, map[string]any{"Name": name})
	case age == 0:
		return t.Format(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
	default:
		return t.Format(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": t.Age(age)})
	}
}
