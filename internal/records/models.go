// Package records holds the backend data model and the list-screen queries
// built on top of it.
package records

import (
	"strconv"

	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
)

// Patient is a patient record as returned by GET /patients.
// DateOfBirth is the canonical YYYY-MM-DD form.
type Patient struct {
	ID          int    `json:"id"`
	FIO         string `json:"fio"`
	DateOfBirth string `json:"date_of_birth"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// BirthDate parses DateOfBirth.
func (p Patient) BirthDate() (calendar.Date, error) {
	return calendar.Parse(p.DateOfBirth)
}

// Age returns the patient's age in full years on today.
func (p Patient) Age(today calendar.Date) (int, error) {
	return calendar.AgeFromString(p.DateOfBirth, today)
}

// PatientInput is the body of POST /patients and PUT /patients/{id}.
type PatientInput struct {
	FIO         string `json:"fio"`
	DateOfBirth string `json:"date_of_birth"`
}

// Document is a file attached to a patient.
type Document struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	PatientID        int          `json:"patient_id"`
	SubdirectoryType SubDirectory `json:"subdirectory_type"`
	AuthorID         *int         `json:"author_id,omitempty"`
	FilePath         *string      `json:"file_path,omitempty"`
	CreatedAt        string       `json:"created_at,omitempty"`
	UpdatedAt        string       `json:"updated_at,omitempty"`
}

// User is a staff account.
type User struct {
	ID       int     `json:"id"`
	FIO      string  `json:"fio"`
	Login    string  `json:"login"`
	RoleID   int     `json:"role_id"`
	Email    *string `json:"email"`
	PhotoURL *string `json:"photo_url"`
	Active   bool    `json:"active"`
}

// Status returns config.StatusActive or config.StatusInactive.
func (u User) Status() string {
	if u.Active {
		return config.StatusActive
	}
	return config.StatusInactive
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	FIO      string  `json:"fio"`
	Login    string  `json:"login"`
	RoleID   int     `json:"role_id"`
	Email    *string `json:"email"`
	Active   bool    `json:"active"`
	PhotoURL *string `json:"photo_url"`
	Password string  `json:"password"`
}

// UpdateUserRequest is the body of PUT /users/{id}. A nil Password keeps the
// current one.
type UpdateUserRequest struct {
	FIO      string  `json:"fio"`
	Login    string  `json:"login"`
	Email    *string `json:"email"`
	Active   bool    `json:"active"`
	RoleID   int     `json:"role_id"`
	PhotoURL *string `json:"photo_url"`
	Password *string `json:"password,omitempty"`
}

// PasswordChange is the body of PUT /users/{id}/password.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Role groups users by permission set.
type Role struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// TokenResponse is returned by /auth/login and /auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	UserID       int    `json:"user_id"`
}

// ErrorResponse is the backend error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// idString renders an id the way dropdown filters store it.
func idString(id int) string {
	return strconv.Itoa(id)
}
