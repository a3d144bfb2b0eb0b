package records

import (
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/pager"
)

// PatientQuery is the filter state of the patient list.
type PatientQuery struct {
	Search string
}

// Predicates returns the filters selected by the query.
func (q PatientQuery) Predicates() []pager.Predicate[Patient] {
	return []pager.Predicate[Patient]{
		pager.Contains(func(p Patient) string { return p.FIO }, q.Search),
	}
}

// Page filters patients and returns the requested page.
func (q PatientQuery) Page(items []Patient, number, size int) pager.Page[Patient] {
	return pager.Paginate(items, number, size, q.Predicates()...)
}

// DocumentQuery is the filter state of the document list. PatientID and
// Directory hold the dropdown value, config.FilterAll when unset.
type DocumentQuery struct {
	Search    string
	PatientID string
	Directory string
}

// Predicates returns the filters selected by the query.
func (q DocumentQuery) Predicates() []pager.Predicate[Document] {
	return []pager.Predicate[Document]{
		pager.Contains(func(d Document) string { return d.Name }, q.Search),
		pager.Equals(func(d Document) string { return idString(d.PatientID) }, q.PatientID),
		pager.Equals(func(d Document) string { return string(d.SubdirectoryType) }, q.Directory),
	}
}

// Page filters documents and returns the requested page.
func (q DocumentQuery) Page(items []Document, number, size int) pager.Page[Document] {
	return pager.Paginate(items, number, size, q.Predicates()...)
}

// UserQuery is the filter state of the staff list. Status is one of
// config.FilterAll, config.StatusActive or config.StatusInactive.
type UserQuery struct {
	Search string
	Status string
	RoleID string
}

// Predicates returns the filters selected by the query.
func (q UserQuery) Predicates() []pager.Predicate[User] {
	return []pager.Predicate[User]{
		pager.Contains(func(u User) string { return u.FIO }, q.Search),
		pager.Equals(User.Status, q.Status),
		pager.Equals(func(u User) string { return idString(u.RoleID) }, q.RoleID),
	}
}

// Page filters users and returns the requested page.
func (q UserQuery) Page(items []User, number, size int) pager.Page[User] {
	return pager.Paginate(items, number, size, q.Predicates()...)
}

// RoleQuery is the filter state of the role list.
type RoleQuery struct {
	Search string
}

// Predicates returns the filters selected by the query.
func (q RoleQuery) Predicates() []pager.Predicate[Role] {
	return []pager.Predicate[Role]{
		pager.Contains(func(r Role) string { return r.Name }, q.Search),
	}
}

// Page filters roles and returns the requested page.
func (q RoleQuery) Page(items []Role, number, size int) pager.Page[Role] {
	return pager.Paginate(items, number, size, q.Predicates()...)
}

// PatientQueryFromState builds a PatientQuery from list-screen state.
func PatientQueryFromState(s *pager.State) PatientQuery {
	return PatientQuery{Search: s.Search}
}

// RoleQueryFromState builds a RoleQuery from list-screen state.
func RoleQueryFromState(s *pager.State) RoleQuery {
	return RoleQuery{Search: s.Search}
}

// DocumentQueryFromState builds a DocumentQuery from list-screen state.
func DocumentQueryFromState(s *pager.State) DocumentQuery {
	return DocumentQuery{
		Search:    s.Search,
		PatientID: s.Filter(config.FilterKeyPatient),
		Directory: s.Filter(config.FilterKeyDirectory),
	}
}

// UserQueryFromState builds a UserQuery from list-screen state.
func UserQueryFromState(s *pager.State) UserQuery {
	return UserQuery{
		Search: s.Search,
		Status: s.Filter(config.FilterKeyStatus),
		RoleID: s.Filter(config.FilterKeyRole),
	}
}

// Without returns items minus the one with the given id, as list screens do
// after a successful delete.
func Without[T any](items []T, id int, idOf func(T) int) []T {
	return pager.Filter(items, func(it T) bool { return idOf(it) != id })
}
