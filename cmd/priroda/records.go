package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/priroda-razuma/internal/backend"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/forms"
	"github.com/tartampluch/priroda-razuma/internal/i18n"
	"github.com/tartampluch/priroda-razuma/internal/pager"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

// -----------------------------------------------------------------------------
// List screens
// -----------------------------------------------------------------------------

// listFlags are the search, filter and page inputs of a list command.
type listFlags struct {
	page    string
	search  string
	status  string
	role    string
	patient string
	dir     string
}

// bind registers --page, --search and the named dropdown filters.
func (f *listFlags) bind(cmd *cobra.Command, filters ...string) {
	fl := cmd.Flags()
	fl.StringVar(&f.page, config.FlagPage, "1", config.FlagDescPage)
	fl.StringVar(&f.search, config.FlagSearch, "", config.FlagDescSearch)
	for _, name := range filters {
		switch name {
		case config.FlagStatus:
			fl.StringVar(&f.status, name, config.FilterAll, config.FlagDescStatus)
		case config.FlagRole:
			fl.StringVar(&f.role, name, config.FilterAll, config.FlagDescRole)
		case config.FlagPatient:
			fl.StringVar(&f.patient, name, config.FilterAll, config.FlagDescPatient)
		case config.FlagDir:
			fl.StringVar(&f.dir, name, config.FilterAll, config.FlagDescDir)
		}
	}
}

// state replays the flags onto a fresh list state. Every change sends the
// list back to page 1; the requested page is applied by selectPage.
func (f *listFlags) state() *pager.State {
	s := pager.NewState()
	s.SetSearch(f.search)
	s.SetFilter(config.FilterKeyStatus, f.status)
	s.SetFilter(config.FilterKeyRole, f.role)
	s.SetFilter(config.FilterKeyPatient, f.patient)
	s.SetFilter(config.FilterKeyDirectory, f.dir)
	return s
}

// selectPage moves s to the page typed by the user. page renders any page
// of the filtered list.
func selectPage[T any](s *pager.State, input string, page func(number int) pager.Page[T]) (pager.Page[T], error) {
	first := page(1)
	if err := s.GoTo(input, first.Count); err != nil {
		return first, err
	}
	if s.Page == first.Number {
		return first, nil
	}
	return page(s.Page), nil
}

// writePage prints the rows, the page footer and, on long lists, the page dots.
func writePage[T any](w io.Writer, tr *i18n.Translator, p pager.Page[T], row func(T)) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, tr.Msg(config.TKeyListEmpty))
	}
	for _, it := range p.Items {
		row(it)
	}
	fmt.Fprintln(w, tr.PageFooter(p.Number, p.Count))
	if pager.Visible(p.Count) {
		fmt.Fprintln(w, pageDots(p.Number, p.Count))
	}
}

// pageDots renders the dot row, e.g. "1 … 3 4 [5] 6 7 … 12".
func pageDots(current, count int) string {
	win := pager.DotWindow(current, count, config.PageDotsVisible)
	var labels []string
	for _, n := range win.Pages(count) {
		switch n {
		case 0:
			labels = append(labels, config.DotGap)
		case current:
			labels = append(labels, fmt.Sprintf(config.FormatDotCurrent, n))
		default:
			labels = append(labels, strconv.Itoa(n))
		}
	}
	return strings.Join(labels, " ")
}

// writePatients prints one page of the FIO-filtered list with ages.
func (a *app) writePatients(w io.Writer, patients []records.Patient, f *listFlags) error {
	st := f.state()
	q := records.PatientQueryFromState(st)
	page, err := selectPage(st, f.page, func(n int) pager.Page[records.Patient] {
		return q.Page(patients, n, a.settings.UI.PageSize)
	})
	if err != nil {
		return errors.New(a.tr.Error(err))
	}

	today := calendar.Today(a.clock)
	writePage(w, a.tr, page, func(p records.Patient) {
		age := ""
		if n, err := p.Age(today); err == nil {
			age = a.tr.Age(n)
		}
		fmt.Fprintf(w, config.FormatPatientRow, p.ID, p.FIO, calendar.DisplayString(p.DateOfBirth), age)
	})
	return nil
}

func (a *app) documentsCommand() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseDocuments,
		Short: config.CmdShortDocuments,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.dir != config.FilterAll {
				if _, ok := records.ParseSubDirectory(f.dir); !ok {
					return fmt.Errorf("%s: %q", config.ErrDirectory, f.dir)
				}
			}
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			docs, err := c.ListDocuments(cmd.Context())
			if err != nil {
				return err
			}
			records.SortBy(docs, func(d records.Document) string { return d.Name })

			st := f.state()
			q := records.DocumentQueryFromState(st)
			page, err := selectPage(st, f.page, func(n int) pager.Page[records.Document] {
				return q.Page(docs, n, a.settings.UI.PageSize)
			})
			if err != nil {
				return errors.New(a.tr.Error(err))
			}
			w := cmd.OutOrStdout()
			writePage(w, a.tr, page, func(d records.Document) {
				fmt.Fprintf(w, config.FormatDocumentRow, d.ID, d.Name, d.PatientID, d.SubdirectoryType)
			})
			return nil
		},
	}
	f.bind(cmd, config.FlagPatient, config.FlagDir)
	cmd.AddCommand(a.deleteCommand(
		func(ctx context.Context, c *backend.Client, id int) (string, error) {
			d, err := c.GetDocument(ctx, id)
			return d.Name, err
		},
		(*backend.Client).DeleteDocument,
	))
	return cmd
}

func (a *app) usersCommand() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseUsers,
		Short: config.CmdShortUsers,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			users, err := c.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			records.SortBy(users, func(u records.User) string { return u.FIO })

			st := f.state()
			q := records.UserQueryFromState(st)
			page, err := selectPage(st, f.page, func(n int) pager.Page[records.User] {
				return q.Page(users, n, a.settings.UI.PageSize)
			})
			if err != nil {
				return errors.New(a.tr.Error(err))
			}
			w := cmd.OutOrStdout()
			writePage(w, a.tr, page, func(u records.User) {
				fmt.Fprintf(w, config.FormatUserRow, u.ID, u.FIO, u.Login, u.RoleID, u.Status())
			})
			return nil
		},
	}
	f.bind(cmd, config.FlagStatus, config.FlagRole)
	cmd.AddCommand(
		a.userAddCommand(),
		a.userEditCommand(),
		a.deleteCommand(
			func(ctx context.Context, c *backend.Client, id int) (string, error) {
				u, err := c.GetUser(ctx, id)
				return u.FIO, err
			},
			(*backend.Client).DeleteUser,
		),
	)
	return cmd
}

func (a *app) rolesCommand() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseRoles,
		Short: config.CmdShortRoles,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			roles, err := c.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			records.SortBy(roles, func(r records.Role) string { return r.Name })

			st := f.state()
			q := records.RoleQueryFromState(st)
			page, err := selectPage(st, f.page, func(n int) pager.Page[records.Role] {
				return q.Page(roles, n, a.settings.UI.PageSize)
			})
			if err != nil {
				return errors.New(a.tr.Error(err))
			}
			w := cmd.OutOrStdout()
			writePage(w, a.tr, page, func(r records.Role) {
				desc := ""
				if r.Description != nil {
					desc = *r.Description
				}
				fmt.Fprintf(w, config.FormatRoleRow, r.ID, r.Name, desc)
			})
			return nil
		},
	}
	f.bind(cmd)
	cmd.AddCommand(
		a.roleAddCommand(),
		a.roleEditCommand(),
		a.deleteCommand(
			func(ctx context.Context, c *backend.Client, id int) (string, error) {
				r, err := c.GetRole(ctx, id)
				return r.Name, err
			},
			(*backend.Client).DeleteRole,
		),
	)
	return cmd
}

// -----------------------------------------------------------------------------
// Forms
// -----------------------------------------------------------------------------

// checkForm prints every failed field on w, ordered by field id.
func (a *app) checkForm(w io.Writer, errs forms.Errors) error {
	if errs.OK() {
		return nil
	}
	msgs := a.tr.Fields(errs)
	for _, field := range slices.Sorted(maps.Keys(msgs)) {
		fmt.Fprintf(w, config.FormatFieldError, field, msgs[field])
	}
	return fmt.Errorf("%s: %w", config.ErrFormInvalid, errs.Err())
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s: %q", config.ErrInvalidID, s)
	}
	return id, nil
}

// deleteCommand looks the record up, deletes it and prints what was removed.
func (a *app) deleteCommand(
	describe func(ctx context.Context, c *backend.Client, id int) (string, error),
	del func(c *backend.Client, ctx context.Context, id int) error,
) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseDelete,
		Short: config.CmdShortDelete,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.connect(ctx)
			if err != nil {
				return err
			}
			name, err := describe(ctx, c, id)
			if err != nil {
				return err
			}
			if err := del(c, ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatDeleted, id, name)
			return nil
		},
	}
}

// patientFlags are the fields of the patient form.
type patientFlags struct {
	last, first, patronymic, birth string
}

func (p *patientFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&p.last, config.FlagLastName, "", config.FlagDescLastName)
	fl.StringVar(&p.first, config.FlagFirstName, "", config.FlagDescFirstName)
	fl.StringVar(&p.patronymic, config.FlagPatronymic, "", config.FlagDescPatronymic)
	fl.StringVar(&p.birth, config.FlagBirthDate, "", config.FlagDescBirthDate)
}

// apply copies the flags given on the command line into f.
func (p *patientFlags) apply(cmd *cobra.Command, f *forms.PatientForm) {
	fl := cmd.Flags()
	if fl.Changed(config.FlagLastName) {
		f.LastName = p.last
	}
	if fl.Changed(config.FlagFirstName) {
		f.FirstName = p.first
	}
	if fl.Changed(config.FlagPatronymic) {
		f.Patronymic = p.patronymic
	}
	if fl.Changed(config.FlagBirthDate) {
		f.BirthDate = p.birth
	}
}

func (a *app) patientAddCommand() *cobra.Command {
	var pf patientFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseAdd,
		Short: config.CmdShortAdd,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f forms.PatientForm
			pf.apply(cmd, &f)
			if err := a.checkForm(cmd.ErrOrStderr(), f.Validate(calendar.Today(a.clock))); err != nil {
				return err
			}
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			p, err := c.CreatePatient(cmd.Context(), f.Input())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatSaved, p.ID, p.FIO)
			return nil
		},
	}
	pf.bind(cmd)
	return cmd
}

func (a *app) patientEditCommand() *cobra.Command {
	var pf patientFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseEdit,
		Short: config.CmdShortEdit,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.connect(ctx)
			if err != nil {
				return err
			}
			stored, err := c.GetPatient(ctx, id)
			if err != nil {
				return err
			}

			f := forms.PatientFormFrom(stored)
			pf.apply(cmd, &f)
			if err := a.checkForm(cmd.ErrOrStderr(), f.Validate(calendar.Today(a.clock))); err != nil {
				return err
			}
			p, err := c.UpdatePatient(ctx, id, f.Input())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatSaved, p.ID, p.FIO)
			return nil
		},
	}
	pf.bind(cmd)
	return cmd
}

// userFlags are the fields of the staff form. The password is read from stdin.
type userFlags struct {
	last, first, patronymic string
	login, email            string
	role                    int
	inactive                bool
}

func (u *userFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&u.last, config.FlagLastName, "", config.FlagDescLastName)
	fl.StringVar(&u.first, config.FlagFirstName, "", config.FlagDescFirstName)
	fl.StringVar(&u.patronymic, config.FlagPatronymic, "", config.FlagDescPatronymic)
	fl.StringVar(&u.login, config.FlagUserLogin, "", config.FlagDescUserLogin)
	fl.StringVar(&u.email, config.FlagEmail, "", config.FlagDescEmail)
	fl.IntVar(&u.role, config.FlagRole, 0, config.FlagDescRole)
	fl.BoolVar(&u.inactive, config.FlagInactive, false, config.FlagDescInactive)
}

// apply copies the flags given on the command line into f. The login is
// reduced to the characters the form accepts, as the login field does on input.
func (u *userFlags) apply(cmd *cobra.Command, f *forms.UserForm) {
	fl := cmd.Flags()
	if fl.Changed(config.FlagLastName) {
		f.LastName = u.last
	}
	if fl.Changed(config.FlagFirstName) {
		f.FirstName = u.first
	}
	if fl.Changed(config.FlagPatronymic) {
		f.Patronymic = u.patronymic
	}
	if fl.Changed(config.FlagUserLogin) {
		f.Login = forms.SanitizeLogin(u.login)
	}
	if fl.Changed(config.FlagEmail) {
		f.Email = u.email
	}
	if fl.Changed(config.FlagRole) {
		f.RoleID = u.role
	}
	if fl.Changed(config.FlagInactive) || !f.Edit {
		f.Active = !u.inactive
	}
}

func (a *app) userAddCommand() *cobra.Command {
	var uf userFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseAdd,
		Short: config.CmdShortAdd,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f forms.UserForm
			uf.apply(cmd, &f)
			password, err := a.readPassword(cmd.ErrOrStderr(), config.PasswordPrompt)
			if err != nil {
				return err
			}
			f.Password = password
			if err := a.checkForm(cmd.ErrOrStderr(), f.Validate()); err != nil {
				return err
			}

			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			u, err := c.CreateUser(cmd.Context(), f.CreateRequest())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatSaved, u.ID, u.FIO)
			return nil
		},
	}
	uf.bind(cmd)
	return cmd
}

func (a *app) userEditCommand() *cobra.Command {
	var uf userFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseEdit,
		Short: config.CmdShortEdit,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.connect(ctx)
			if err != nil {
				return err
			}
			stored, err := c.GetUser(ctx, id)
			if err != nil {
				return err
			}

			f := forms.UserFormFrom(stored)
			uf.apply(cmd, &f)
			if err := a.checkForm(cmd.ErrOrStderr(), f.Validate()); err != nil {
				return err
			}
			u, err := c.UpdateUser(ctx, id, f.UpdateRequest(stored.PhotoURL))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatSaved, u.ID, u.FIO)
			return nil
		},
	}
	uf.bind(cmd)
	return cmd
}

// roleFlags are the fields of the role form.
type roleFlags struct {
	name, description string
}

func (r *roleFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.name, config.FlagName, "", config.FlagDescName)
	cmd.Flags().StringVar(&r.description, config.FlagDescription, "", config.FlagDescDescription)
}

func (r *roleFlags) apply(cmd *cobra.Command, f *forms.RoleForm) {
	if cmd.Flags().Changed(config.FlagName) {
		f.Name = r.name
	}
	if cmd.Flags().Changed(config.FlagDescription) {
		f.Description = r.description
	}
}

func (a *app) roleAddCommand() *cobra.Command {
	var rf roleFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseAdd,
		Short: config.CmdShortAdd,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f forms.RoleForm
			rf.apply(cmd, &f)
			if err := a.checkForm(cmd.ErrOrStderr(), f.Validate()); err != nil {
				return err
			}
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			r, err := c.CreateRole(cmd.Context(), f.Role(0))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatSaved, r.ID, r.Name)
			return nil
		},
	}
	rf.bind(cmd)
	return cmd
}

func (a *app) roleEditCommand() *cobra.Command {
	var rf roleFlags
	cmd := &cobra.Command{
		Use:   config.CmdUseEdit,
		Short: config.CmdShortEdit,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.connect(ctx)
			if err != nil {
				return err
			}
			stored, err := c.GetRole(ctx, id)
			if err != nil {
				return err
			}

			f := forms.RoleFormFrom(stored)
			rf.apply(cmd, &f)
			if err := a.checkForm(cmd.ErrOrStderr(), f.Validate()); err != nil {
				return err
			}
			r, err := c.UpdateRole(ctx, id, f.Role(id))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatSaved, r.ID, r.Name)
			return nil
		},
	}
	rf.bind(cmd)
	return cmd
}

// passwordCommand is the "change password" dialog: current, new and repeated
// password are read from stdin, one per line.
func (a *app) passwordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUsePassword,
		Short: config.CmdShortPassword,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := cmd.ErrOrStderr()
			var f forms.PasswordForm
			var err error
			if f.Old, err = a.readPassword(prompt, config.OldPasswordPrompt); err != nil {
				return err
			}
			if f.New, err = a.readPassword(prompt, config.NewPasswordPrompt); err != nil {
				return err
			}
			if f.Confirm, err = a.readPassword(prompt, config.ConfirmPasswordPrompt); err != nil {
				return err
			}
			if err := a.checkForm(prompt, f.Validate()); err != nil {
				return err
			}

			ctx := cmd.Context()
			c, err := a.connect(ctx)
			if err != nil {
				return err
			}
			me, err := c.CurrentUser(ctx)
			if err != nil {
				return err
			}
			if err := c.ChangePassword(ctx, me.ID, f.Request()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.PasswordChanged)
			return nil
		},
	}
}
