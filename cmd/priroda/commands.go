package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/tartampluch/priroda-razuma/internal/backend"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/engine"
	"github.com/tartampluch/priroda-razuma/internal/server"
	"github.com/tartampluch/priroda-razuma/internal/session"
)

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               config.AppBinary,
		Short:             config.CmdShortRoot,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, config.FlagConfig, config.FlagShortConf, "", config.FlagDescConfig)
	root.PersistentFlags().BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)
	root.PersistentFlags().StringVar(&a.today, config.FlagToday, "", config.FlagDescToday)

	root.AddCommand(
		a.serveCommand(),
		a.ageCommand(),
		a.calendarCommand(),
		a.patientsCommand(),
		a.exportCommand(),
		a.documentsCommand(),
		a.usersCommand(),
		a.rolesCommand(),
		a.passwordCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		versionCommand(),
	)
	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseVersion,
		Short: config.CmdShortVersion,
		Args:  cobra.NoArgs,
		// No settings needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseServe,
		Short: config.CmdShortServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var src engine.PatientSource
			if a.settings.Source.Mode == config.SourceModeWeb {
				c, err := a.connect(ctx)
				if err != nil {
					return err
				}
				src = c
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv := server.NewFeedServer(a.settings.Server.Port, reg)
			srv.PageSize = a.settings.UI.PageSize
			worker := server.NewWorker(a.generator(src), a.syncConfig(), a.settings.RefreshInterval(), srv)

			go worker.Run(ctx)
			go kickOnHangup(ctx, worker)
			return srv.Start(ctx)
		},
	}
}

// kickOnHangup re-syncs on SIGHUP.
func kickOnHangup(ctx context.Context, w *server.Worker) {
	hup := make(chan os.Signal, config.ChannelBufferSize)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			w.Kick()
		}
	}
}

func (a *app) ageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseAge,
		Short: config.CmdShortAge,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := calendar.ValidateBirthDate(args[0], calendar.Today(a.clock))
			if err != nil {
				return errors.New(a.tr.Error(err))
			}
			age := calendar.CalculateAge(birth, calendar.Today(a.clock))
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatAgeOutput, birth.Display(), a.tr.Age(age))
			return nil
		},
	}
}

func (a *app) calendarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseCalendar,
		Short: config.CmdShortCalendar,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := calendar.Today(a.clock)
			year, month := today.Year, today.Month
			if len(args) == 1 {
				t, err := time.Parse(config.MonthArgLayout, args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrDateParse, err)
				}
				year, month = t.Year(), int(t.Month())
			}
			writeGrid(cmd.OutOrStdout(), calendar.MonthGrid(year, month, today))
			return nil
		},
	}
}

func writeGrid(w io.Writer, g calendar.Grid) {
	fmt.Fprintf(w, config.FormatGridHeader, g.Year, g.Month)
	var b strings.Builder
	for _, label := range config.WeekdayLabels {
		fmt.Fprintf(&b, config.FormatGridLabel, label)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for _, row := range g.Rows {
		b.Reset()
		for _, c := range row {
			switch {
			case !c.InMonth():
				b.WriteString(config.GridBlank)
			case c.Today:
				fmt.Fprintf(&b, config.FormatGridToday, c.Day)
			default:
				fmt.Fprintf(&b, config.FormatGridCell, c.Day)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func (a *app) patientsCommand() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   config.CmdUsePatients,
		Short: config.CmdShortPatients,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			patients, err := a.loadPatients(cmd.Context())
			if err != nil {
				return err
			}
			return a.writePatients(cmd.OutOrStdout(), patients, &f)
		},
	}
	f.bind(cmd)
	cmd.AddCommand(
		a.patientAddCommand(),
		a.patientEditCommand(),
		a.deleteCommand(
			func(ctx context.Context, c *backend.Client, id int) (string, error) {
				p, err := c.GetPatient(ctx, id)
				return p.FIO, err
			},
			(*backend.Client).DeletePatient,
		),
	)
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   config.CmdUseExport,
		Short: config.CmdShortExport,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			patients, err := a.loadPatients(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				return engine.ExportVCards(cmd.OutOrStdout(), patients)
			}
			f, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermUserRW)
			if err != nil {
				return err
			}
			if err := engine.ExportVCards(f, patients); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, config.FlagOutput, "o", "", config.FlagDescOutput)
	return cmd
}

func (a *app) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseLogin,
		Short: config.CmdShortLogin,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			password, err := a.readPassword(cmd.ErrOrStderr(), config.PasswordPrompt)
			if err != nil {
				return err
			}
			if err := c.Login(cmd.Context(), a.settings.Backend.Login, password); err != nil {
				return err
			}
			u, err := c.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatLoggedIn, u.FIO, u.Login)
			return nil
		},
	}
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseLogout,
		Short: config.CmdShortLogout,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if a.settings.Backend.Login == "" {
				return errors.New(config.ErrLoginEmpty)
			}
			return session.NewTokenStore().Delete(a.settings.Backend.Login)
		},
	}
}
