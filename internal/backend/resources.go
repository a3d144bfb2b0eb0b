package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

func itemPath(base string, id int) string {
	return base + "/" + strconv.Itoa(id)
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.call(ctx, func() (request, error) {
		return jsonRequest(http.MethodGet, path, nil)
	}, &out)
	return out, err
}

func send[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var out T
	err := c.call(ctx, func() (request, error) {
		return jsonRequest(method, path, payload)
	}, &out)
	return out, err
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.call(ctx, func() (request, error) {
		return jsonRequest(http.MethodDelete, path, nil)
	}, nil)
}

// Patients

// ListPatients returns every patient.
func (c *Client) ListPatients(ctx context.Context) ([]records.Patient, error) {
	return get[[]records.Patient](ctx, c, config.PathPatients)
}

// GetPatient returns one patient.
func (c *Client) GetPatient(ctx context.Context, id int) (records.Patient, error) {
	return get[records.Patient](ctx, c, itemPath(config.PathPatients, id))
}

// CreatePatient stores a new patient.
func (c *Client) CreatePatient(ctx context.Context, in records.PatientInput) (records.Patient, error) {
	return send[records.Patient](ctx, c, http.MethodPost, config.PathPatients, in)
}

// UpdatePatient replaces a patient's name and birth date.
func (c *Client) UpdatePatient(ctx context.Context, id int, in records.PatientInput) (records.Patient, error) {
	return send[records.Patient](ctx, c, http.MethodPut, itemPath(config.PathPatients, id), in)
}

// DeletePatient removes a patient.
func (c *Client) DeletePatient(ctx context.Context, id int) error {
	return c.del(ctx, itemPath(config.PathPatients, id))
}

// Documents

// ListDocuments returns every document.
func (c *Client) ListDocuments(ctx context.Context) ([]records.Document, error) {
	return get[[]records.Document](ctx, c, config.PathDocuments)
}

// GetDocument returns one document's metadata.
func (c *Client) GetDocument(ctx context.Context, id int) (records.Document, error) {
	return get[records.Document](ctx, c, itemPath(config.PathDocuments, id))
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return c.del(ctx, itemPath(config.PathDocuments, id))
}

// Users

// ListUsers returns every staff account.
func (c *Client) ListUsers(ctx context.Context) ([]records.User, error) {
	return get[[]records.User](ctx, c, config.PathUsers)
}

// GetUser returns one staff account.
func (c *Client) GetUser(ctx context.Context, id int) (records.User, error) {
	return get[records.User](ctx, c, itemPath(config.PathUsers, id))
}

// CreateUser stores a new staff account.
func (c *Client) CreateUser(ctx context.Context, req records.CreateUserRequest) (records.User, error) {
	return send[records.User](ctx, c, http.MethodPost, config.PathUsers, req)
}

// UpdateUser replaces a staff account.
func (c *Client) UpdateUser(ctx context.Context, id int, req records.UpdateUserRequest) (records.User, error) {
	return send[records.User](ctx, c, http.MethodPut, itemPath(config.PathUsers, id), req)
}

// DeleteUser removes a staff account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.del(ctx, itemPath(config.PathUsers, id))
}

// ChangePassword updates the password of user id.
func (c *Client) ChangePassword(ctx context.Context, id int, req records.PasswordChange) error {
	return c.call(ctx, func() (request, error) {
		return jsonRequest(http.MethodPut, itemPath(config.PathUsers, id)+config.PathPassword, req)
	}, nil)
}

// Roles

// ListRoles returns every role.
func (c *Client) ListRoles(ctx context.Context) ([]records.Role, error) {
	return get[[]records.Role](ctx, c, config.PathRoles)
}

// GetRole returns one role.
func (c *Client) GetRole(ctx context.Context, id int) (records.Role, error) {
	return get[records.Role](ctx, c, itemPath(config.PathRoles, id))
}

// CreateRole stores a new role.
func (c *Client) CreateRole(ctx context.Context, r records.Role) (records.Role, error) {
	return send[records.Role](ctx, c, http.MethodPost, config.PathRoles, r)
}

// UpdateRole replaces a role.
func (c *Client) UpdateRole(ctx context.Context, id int, r records.Role) (records.Role, error) {
	return send[records.Role](ctx, c, http.MethodPut, itemPath(config.PathRoles, id), r)
}

// DeleteRole removes a role.
func (c *Client) DeleteRole(ctx context.Context, id int) error {
	return c.del(ctx, itemPath(config.PathRoles, id))
}
