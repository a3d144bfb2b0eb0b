package forms

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

// Errors maps a field id (config.Field*) to its translation key.
type Errors map[string]string

// Add records key for field unless key is empty.
func (e Errors) Add(field, key string) {
	if key != "" {
		e[field] = key
	}
}

// OK reports whether no field failed.
func (e Errors) OK() bool { return len(e) == 0 }

// Err returns e as an error, or nil when every field passed.
func (e Errors) Err() error {
	if e.OK() {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return strings.Join(parts, "; ")
}

// PatientForm is the create/edit patient form.
type PatientForm struct {
	LastName   string
	FirstName  string
	Patronymic string
	BirthDate  string
}

// PatientFormFrom fills the form from a stored patient.
func PatientFormFrom(p records.Patient) PatientForm {
	fio := records.SplitFIO(p.FIO)
	return PatientForm{
		LastName:   fio.Last,
		FirstName:  fio.First,
		Patronymic: fio.Patronymic,
		BirthDate:  p.DateOfBirth,
	}
}

// Validate checks every field against today.
func (f PatientForm) Validate(today calendar.Date) Errors {
	errs := Errors{}
	errs.Add(config.FieldLastName, Name(f.LastName))
	errs.Add(config.FieldFirstName, Name(f.FirstName))
	errs.Add(config.FieldPatronymic, Patronymic(f.Patronymic))
	_, key := BirthDate(f.BirthDate, today)
	errs.Add(config.FieldBirthDate, key)
	return errs
}

// Input builds the request body. Call it only after Validate passed.
func (f PatientForm) Input() records.PatientInput {
	return records.PatientInput{
		FIO:         records.JoinFIO(f.LastName, f.FirstName, f.Patronymic),
		DateOfBirth: strings.TrimSpace(f.BirthDate),
	}
}

// UserForm is the create/edit staff form. Edit relaxes the password rule.
type UserForm struct {
	LastName   string
	FirstName  string
	Patronymic string
	Login      string
	Password   string
	Email      string
	RoleID     int
	Active     bool
	Edit       bool
}

// UserFormFrom fills the edit form from a stored account. The password
// stays empty so saving keeps the current one.
func UserFormFrom(u records.User) UserForm {
	fio := records.SplitFIO(u.FIO)
	f := UserForm{
		LastName:   fio.Last,
		FirstName:  fio.First,
		Patronymic: fio.Patronymic,
		Login:      u.Login,
		RoleID:     u.RoleID,
		Active:     u.Active,
		Edit:       true,
	}
	if u.Email != nil {
		f.Email = *u.Email
	}
	return f
}

// Validate checks every field.
func (f UserForm) Validate() Errors {
	errs := Errors{}
	errs.Add(config.FieldLastName, Name(f.LastName))
	errs.Add(config.FieldFirstName, Name(f.FirstName))
	errs.Add(config.FieldPatronymic, Patronymic(f.Patronymic))
	errs.Add(config.FieldLogin, Login(f.Login))
	errs.Add(config.FieldPassword, Password(f.Password, !f.Edit))
	errs.Add(config.FieldEmail, Email(f.Email))
	if f.RoleID <= 0 {
		errs.Add(config.FieldRole, config.TKeyErrRoleSelect)
	}
	return errs
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (f UserForm) fio() string {
	return records.JoinFIO(f.LastName, f.FirstName, f.Patronymic)
}

// CreateRequest builds the POST /users body.
func (f UserForm) CreateRequest() records.CreateUserRequest {
	return records.CreateUserRequest{
		FIO:      f.fio(),
		Login:    f.Login,
		RoleID:   f.RoleID,
		Email:    optional(f.Email),
		Active:   f.Active,
		Password: f.Password,
	}
}

// UpdateRequest builds the PUT /users/{id} body, keeping photoURL.
func (f UserForm) UpdateRequest(photoURL *string) records.UpdateUserRequest {
	return records.UpdateUserRequest{
		FIO:      f.fio(),
		Login:    f.Login,
		Email:    optional(f.Email),
		Active:   f.Active,
		RoleID:   f.RoleID,
		PhotoURL: photoURL,
		Password: optional(f.Password),
	}
}

// RoleForm is the create/edit role form.
type RoleForm struct {
	Name        string
	Description string
}

// RoleFormFrom fills the form from a stored role.
func RoleFormFrom(r records.Role) RoleForm {
	f := RoleForm{Name: r.Name}
	if r.Description != nil {
		f.Description = *r.Description
	}
	return f
}

// Validate checks the role name.
func (f RoleForm) Validate() Errors {
	errs := Errors{}
	errs.Add(config.FieldRoleName, RoleName(f.Name))
	return errs
}

// Role builds the request body for id (0 on create).
func (f RoleForm) Role(id int) records.Role {
	return records.Role{
		ID:          id,
		Name:        strings.TrimSpace(f.Name),
		Description: optional(strings.TrimSpace(f.Description)),
	}
}

// PasswordForm is the "change password" dialog of the profile screen.
type PasswordForm struct {
	Old     string
	New     string
	Confirm string
}

// Validate checks the three fields.
func (f PasswordForm) Validate() Errors {
	errs := Errors{}
	if f.Old == "" {
		errs.Add(config.FieldOldPassword, config.TKeyErrRequired)
	}
	key := Password(f.New, true)
	if key == "" && f.Old != "" && f.New == f.Old {
		key = config.TKeyErrPassSame
	}
	errs.Add(config.FieldNewPassword, key)
	if f.Confirm != f.New {
		errs.Add(config.FieldConfirm, config.TKeyErrPassMismatch)
	}
	return errs
}

// Request builds the PUT /users/{id}/password body.
func (f PasswordForm) Request() records.PasswordChange {
	return records.PasswordChange{OldPassword: f.Old, NewPassword: f.New}
}
