package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/priroda-razuma/internal/backend"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/engine"
	"github.com/tartampluch/priroda-razuma/internal/i18n"
	"github.com/tartampluch/priroda-razuma/internal/records"
	"github.com/tartampluch/priroda-razuma/internal/session"
)

// app holds what every subcommand shares once the root has set it up.
type app struct {
	configPath string
	debug      bool
	today      string

	settings  *config.Settings
	tr        *i18n.Translator
	clock     calendar.Clock
	logCloser io.Closer
	stdin     io.Reader
	in        *bufio.Reader
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// setup loads the settings, installs logging and builds the translator.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.settings = s
	a.logCloser = setupLogging(s.Log, a.debug)
	logStartupInfo()

	if a.tr, err = i18n.New(s.UI.Language); err != nil {
		return err
	}

	a.clock = calendar.RealClock{}
	if a.today != "" {
		d, err := calendar.Parse(a.today)
		if err != nil {
			return err
		}
		a.clock = fixedClock{d.Time(time.Local)}
	}
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close() // Best effort close
	}
}

// newClient returns a signed-out client that persists refresh tokens.
func (a *app) newClient() (*backend.Client, error) {
	if a.settings.Backend.Login == "" {
		return nil, errors.New(config.ErrLoginEmpty)
	}
	c, err := backend.NewClient(a.settings.Backend.URL, session.New())
	if err != nil {
		return nil, err
	}
	c.Store = session.NewTokenStore()
	return c, nil
}

// connect returns a backend client with a live session: the stored refresh
// token is tried first, then the password from the environment.
func (a *app) connect(ctx context.Context) (*backend.Client, error) {
	c, err := a.newClient()
	if err != nil {
		return nil, err
	}

	login := a.settings.Backend.Login
	err = c.Resume(ctx, login)
	if err == nil {
		slog.Info(config.MsgSessionResume,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyUser, login)
		return c, nil
	}
	if errors.Is(err, session.ErrNoToken) {
		slog.Debug(config.MsgTokenMissing, config.LogKeyComponent, config.CompMain)
	}
	pw := os.Getenv(config.EnvPassword)
	if pw == "" {
		return nil, err
	}
	if err := c.Login(ctx, login, pw); err != nil {
		return nil, err
	}
	return c, nil
}

// source returns where patients come from in the configured mode.
func (a *app) source(ctx context.Context) (engine.PatientSource, error) {
	if a.settings.Source.Mode == config.SourceModeLocal {
		return engine.FileSource{Path: a.settings.Source.LocalPath}, nil
	}
	return a.connect(ctx)
}

func (a *app) loadPatients(ctx context.Context) ([]records.Patient, error) {
	src, err := a.source(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := src.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	records.SortByFIO(patients)
	return patients, nil
}

func (a *app) generator(src engine.PatientSource) *engine.Generator {
	return &engine.Generator{
		Clock:         a.clock,
		Source:        src,
		FormatSummary: a.tr.Summary,
		FormatAge:     a.tr.Age,
	}
}

func (a *app) syncConfig() engine.SyncConfig {
	return engine.SyncConfig{
		Mode:            a.settings.Source.Mode,
		LocalPath:       a.settings.Source.LocalPath,
		ReminderTrigger: a.settings.ReminderTrigger(),
	}
}

// readPassword prompts on w and takes the next line of stdin.
func (a *app) readPassword(w io.Writer, prompt string) (string, error) {
	if a.in == nil {
		a.in = bufio.NewReader(a.stdin)
	}
	fmt.Fprint(w, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
