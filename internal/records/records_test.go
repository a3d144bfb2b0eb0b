package records_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/pager"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

func TestPatient_FromBackendJSON(t *testing.T) {
	body := `{"id":7,"fio":"Иванов Иван Иванович","date_of_birth":"2015-03-08",
		"created_at":"2024-01-10T09:00:00","updated_at":"2024-01-10T09:00:00"}`

	var p records.Patient
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	assert.Equal(t, 7, p.ID)

	d, err := p.BirthDate()
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Year: 2015, Month: 3, Day: 8}, d)

	age, err := p.Age(calendar.Date{Year: 2024, Month: 3, Day: 7})
	require.NoError(t, err)
	assert.Equal(t, 8, age, "Birthday not yet reached")
}

func TestPatient_BadBirthDate(t *testing.T) {
	p := records.Patient{DateOfBirth: "08.03.2015"}
	_, err := p.Age(calendar.Date{Year: 2024, Month: 1, Day: 1})
	var pe *calendar.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestDocument_OptionalFields(t *testing.T) {
	var d records.Document
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"scan.pdf","patient_id":3,"subdirectory_type":"Анамнез"}`), &d))
	assert.Nil(t, d.AuthorID)
	assert.Nil(t, d.FilePath)
	assert.Equal(t, records.Anamnesis, d.SubdirectoryType)
}

func TestUpdateUserRequest_OmitsNilPassword(t *testing.T) {
	raw, err := json.Marshal(records.UpdateUserRequest{FIO: "Петров Пётр", Login: "petrov1", RoleID: 2, Active: true})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	pw := "secret1"
	raw, err = json.Marshal(records.UpdateUserRequest{Password: &pw})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"password":"secret1"`)
}

func TestParseSubDirectory(t *testing.T) {
	for _, d := range records.SubDirectories {
		got, ok := records.ParseSubDirectory(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := records.ParseSubDirectory("Прочее")
	assert.False(t, ok)
	assert.Len(t, records.SubDirectories, 5)
}

func TestSplitFIO(t *testing.T) {
	tests := []struct {
		in   string
		want records.FIO
	}{
		{"Иванов Иван Иванович", records.FIO{"Иванов", "Иван", "Иванович"}},
		{"Иванов Иван", records.FIO{"Иванов", "Иван", ""}},
		{"  Иванов   Иван  ", records.FIO{"Иванов", "Иван", ""}},
		{"Иванов", records.FIO{Last: "Иванов"}},
		{"", records.FIO{}},
		{"Оглы Мамед Али Оглы", records.FIO{"Оглы", "Мамед", "Али Оглы"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, records.SplitFIO(tt.in), tt.in)
	}
}

func TestJoinFIO(t *testing.T) {
	assert.Equal(t, "Иванов Иван", records.JoinFIO("Иванов", "Иван", ""))
	assert.Equal(t, "Иванов Иван Иванович", records.JoinFIO(" Иванов ", "Иван", "Иванович"))
	assert.Equal(t, "", records.JoinFIO("", " "))
	assert.Equal(t, "Иванов Иван Иванович", records.SplitFIO("Иванов Иван Иванович").String())
}

func TestSortByFIO(t *testing.T) {
	ps := []records.Patient{
		{ID: 1, FIO: "Яковлев Яков"},
		{ID: 2, FIO: "абрамов Абрам"},
		{ID: 3, FIO: "Ёлкин Егор"},
		{ID: 4, FIO: "Борисов Борис"},
	}
	records.SortByFIO(ps)

	ids := make([]int, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	assert.Equal(t, []int{2, 4, 3, 1}, ids)
}

func TestPatientQuery(t *testing.T) {
	ps := make([]records.Patient, 0, 25)
	for i := range 25 {
		fio := "Петров"
		if i%5 == 0 {
			fio = "Иванова"
		}
		ps = append(ps, records.Patient{ID: i, FIO: fio})
	}

	all := records.PatientQuery{}.Page(ps, 3, 10)
	assert.Equal(t, 3, all.Count)
	assert.Len(t, all.Items, 5)

	page := records.PatientQuery{Search: "ИВАН"}.Page(ps, 1, 10)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.Count)
	for _, p := range page.Items {
		assert.Equal(t, "Иванова", p.FIO)
	}
}

func TestDocumentQuery(t *testing.T) {
	docs := []records.Document{
		{ID: 1, Name: "Заключение", PatientID: 1, SubdirectoryType: records.Diagnostics},
		{ID: 2, Name: "Заключение логопеда", PatientID: 2, SubdirectoryType: records.Diagnostics},
		{ID: 3, Name: "План", PatientID: 1, SubdirectoryType: records.WorkPlan},
		{ID: 4, Name: "Фото", PatientID: 1, SubdirectoryType: records.PhotosAndVideos},
	}

	tests := []struct {
		name  string
		query records.DocumentQuery
		want  []int
	}{
		{"everything", records.DocumentQuery{PatientID: "all", Directory: "all"}, []int{1, 2, 3, 4}},
		{"by patient", records.DocumentQuery{PatientID: "1", Directory: "all"}, []int{1, 3, 4}},
		{"by directory", records.DocumentQuery{Directory: string(records.Diagnostics)}, []int{1, 2}},
		{"search and patient", records.DocumentQuery{Search: "заключ", PatientID: "2"}, []int{2}},
		{"no match", records.DocumentQuery{Search: "рентген"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := tt.query.Page(docs, 1, 10)
			ids := make([]int, 0, len(page.Items))
			for _, d := range page.Items {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUserQuery(t *testing.T) {
	users := []records.User{
		{ID: 1, FIO: "Смирнова Анна", RoleID: 1, Active: true},
		{ID: 2, FIO: "Смирнов Олег", RoleID: 2, Active: false},
		{ID: 3, FIO: "Кузнецова Ольга", RoleID: 2, Active: true},
	}

	count := func(q records.UserQuery) int { return q.Page(users, 1, 10).Total }

	assert.Equal(t, 3, count(records.UserQuery{Status: "all", RoleID: "all"}))
	assert.Equal(t, 2, count(records.UserQuery{Status: "active"}))
	assert.Equal(t, 1, count(records.UserQuery{Status: "inactive"}))
	assert.Equal(t, 2, count(records.UserQuery{RoleID: "2"}))
	assert.Equal(t, 1, count(records.UserQuery{Search: "смирн", Status: "active"}))
	assert.Equal(t, 0, count(records.UserQuery{Search: "кузн", Status: "inactive"}))
}

func TestRoleQuery(t *testing.T) {
	roles := []records.Role{{ID: 1, Name: "Администратор"}, {ID: 2, Name: "Логопед"}}
	page := records.RoleQuery{Search: "лог"}.Page(roles, 1, 10)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Items[0].ID)
}

func TestQueriesFromState(t *testing.T) {
	s := pager.NewState()
	s.SetSearch("кузн")
	s.SetFilter("status", "active")
	s.SetFilter("role", "2")

	uq := records.UserQueryFromState(s)
	assert.Equal(t, records.UserQuery{Search: "кузн", Status: "active", RoleID: "2"}, uq)

	dq := records.DocumentQueryFromState(pager.NewState())
	assert.Equal(t, "all", dq.PatientID)
	assert.Equal(t, "all", dq.Directory)
}

func TestSearchQueriesFromState(t *testing.T) {
	s := pager.NewState()
	s.SetSearch("лог")
	assert.Equal(t, records.PatientQuery{Search: "лог"}, records.PatientQueryFromState(s))
	assert.Equal(t, records.RoleQuery{Search: "лог"}, records.RoleQueryFromState(s))
}

func TestWithout(t *testing.T) {
	roles := []records.Role{{ID: 1}, {ID: 2}, {ID: 3}}
	left := records.Without(roles, 2, func(r records.Role) int { return r.ID })
	assert.Equal(t, []records.Role{{ID: 1}, {ID: 3}}, left)
	assert.Len(t, roles, 3)
}
