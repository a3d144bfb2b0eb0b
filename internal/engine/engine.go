// Package engine turns patient records into an iCalendar birthday feed.
package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // vCard file for local mode
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D"), "" for none
}

// Generator loads patients and builds the feed.
type Generator struct {
	Clock  calendar.Clock
	Source PatientSource // used in web mode

	// FormatSummary renders an event title; defaults to a Russian fallback.
	FormatSummary func(name string, age int, yearKnown bool) string
	// FormatAge renders an age label; defaults to calendar.FormatAge.
	FormatAge func(age int) string
}

type syncStats struct{ processed, withBday, today int }

// RunSync executes the loading, validation and generation pipeline.
// It returns the ICS data, the patient entries ordered by next birthday,
// the count of birthdays today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []PatientEntry, int, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	patients, err := g.loadPatients(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	ics, entries, today, err := g.Generate(patients, cfg.ReminderTrigger)
	if err == nil {
		log.Debug(config.MsgSyncFinished, config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return ics, entries, today, err
}

func (g *Generator) loadPatients(ctx context.Context, cfg SyncConfig) ([]records.Patient, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		return FileSource{Path: cfg.LocalPath}.ListPatients(ctx)
	case config.SourceModeWeb:
		if g.Source == nil {
			return nil, errors.New(config.ErrSourceMissing)
		}
		return g.Source.ListPatients(ctx)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// Generate builds the feed from already loaded patients. Patients whose
// birth date is missing, malformed, nonexistent or in the future are skipped.
func (g *Generator) Generate(patients []records.Patient, reminderTrigger string) ([]byte, []PatientEntry, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Birthdays follow the local calendar day; only DTSTAMP is UTC.
	now := g.Clock.Now()
	today := calendar.FromTime(now)
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	var stats syncStats
	entries := make([]PatientEntry, 0, len(patients))

	for _, p := range patients {
		stats.processed++
		birth, err := calendar.ValidateBirthDate(p.DateOfBirth, today)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, p.FIO,
				config.LogKeyValue, p.DateOfBirth,
				config.LogKeyError, err)
			continue
		}
		stats.withBday++

		entry := g.newEntry(p, birth, today)
		entries = append(entries, entry)

		if entry.IsToday(today) {
			stats.today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, p.FIO,
				config.LogKeyDOB, birth.String())
		}

		for _, e := range g.createEvents(entry, reminderTrigger, today) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	records.SortBy(entries, func(e PatientEntry) string { return e.FIO })
	slices.SortStableFunc(entries, func(a, b PatientEntry) int {
		return a.NextOccurrence.Compare(b.NextOccurrence)
	})

	g.logSuccess(stats)

	// Calendar clients reject a VCALENDAR without components.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), entries, 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), entries, stats.today, nil
}

func (g *Generator) newEntry(p records.Patient, birth, today calendar.Date) PatientEntry {
	input := fmt.Sprintf(config.FormatHashInput, p.ID, p.FIO, birth.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))

	next := NextOccurrence(birth, today)
	age := calendar.CalculateAge(birth, today)
	return PatientEntry{
		UID:            fmt.Sprintf("%x", hash[:config.UIDHashLength]),
		ID:             p.ID,
		FIO:            p.FIO,
		BirthDate:      birth,
		NextOccurrence: next,
		Age:            age,
		AgeNext:        next.Year - birth.Year,
		AgeLabel:       g.ageLabel(age),
	}
}

func (g *Generator) ageLabel(age int) string {
	if g.FormatAge != nil {
		return g.FormatAge(age)
	}
	return calendar.FormatAge(age)
}

func (g *Generator) logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}

// Anniversary returns the birthday in year. A 29 February birthday falls on
// 28 February in common years.
func Anniversary(birth calendar.Date, year int) calendar.Date {
	return calendar.Date{
		Year:  year,
		Month: birth.Month,
		Day:   calendar.ClampDay(year, birth.Month, birth.Day),
	}
}

// NextOccurrence returns today if it is the birthday, otherwise the next one.
func NextOccurrence(birth, today calendar.Date) calendar.Date {
	candidate := Anniversary(birth, today.Year)
	if candidate.Before(today) {
		candidate = Anniversary(birth, today.Year+1)
	}
	return candidate
}

// createEvents emits one all-day event per year from last year to next year,
// never before the birth year.
func (g *Generator) createEvents(e PatientEntry, reminderTrigger string, today calendar.Date) []*ical.Event {
	var events []*ical.Event
	for y := today.Year - 1; y <= today.Year+1; y++ {
		if y < e.BirthDate.Year {
			continue
		}
		age := y - e.BirthDate.Year

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.UID, y, config.ICalDomain))

		summary := g.summary(e.FIO, age)
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(Anniversary(e.BirthDate, y).Time(time.UTC))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events
}

func (g *Generator) summary(name string, age int) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(name, age, true)
	}
	if age == 0 {
		return fmt.Sprintf(config.FallbackSummaryBirth, name)
	}
	return fmt.Sprintf(config.FallbackSummaryAge, name, calendar.FormatAge(age))
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
