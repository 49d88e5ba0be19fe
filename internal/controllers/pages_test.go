package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesRequireSession(t *testing.T) {
	r, _, _ := setup(t)

	for _, path := range []string{
		"/student_dashboard", "/admin_dashboard",
		"/schedule", "/attendance", "/assignments", "/calendar",
		"/admin_settings", "/invite_link",
	} {
		w := get(r, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestStudentCannotOpenAdminDashboard(t *testing.T) {
	r, _, _ := setup(t)
	student := login(t, r, "student1", "student123")

	w := get(r, "/admin_dashboard", student)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboardsGreetUser(t *testing.T) {
	r, _, _ := setup(t)

	admin := login(t, r, "admin", "admin123")
	w := get(r, "/admin_dashboard", admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")

	student := login(t, r, "student1", "student123")
	w = get(r, "/student_dashboard", student)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "student1")
}

func TestAdminCanAddClass(t *testing.T) {
	r, s, _ := setup(t)
	admin := login(t, r, "admin", "admin123")

	w := postForm(r, "/schedule", url.Values{
		"class_name": {"Mathematics"},
		"room":       {"101"},
		"time":       {"09:00"},
		"day":        {"Monday"},
		"teacher":    {"Mr. Smith"},
	}, admin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mathematics")

	classes := s.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, 1, classes[0].ID)
	assert.Equal(t, "Mr. Smith", classes[0].Teacher)
}

func TestStudentPostToScheduleIsIgnored(t *testing.T) {
	r, s, _ := setup(t)
	student := login(t, r, "student1", "student123")

	w := postForm(r, "/schedule", url.Values{
		"class_name": {"Sneaky"},
		"room":       {"1"},
		"time":       {"10:00"},
		"day":        {"Friday"},
		"teacher":    {"Nobody"},
	}, student)

	// The page still renders; the write is silently dropped.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.Classes())
}

func TestStudentSeesScheduleWithoutAddForm(t *testing.T) {
	r, _, _ := setup(t)
	student := login(t, r, "student1", "student123")

	w := get(r, "/schedule", student)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Add a Class")

	admin := login(t, r, "admin", "admin123")
	w = get(r, "/schedule", admin)
	assert.Contains(t, w.Body.String(), "Add a Class")
}

func TestAdminCanMarkAttendance(t *testing.T) {
	r, s, _ := setup(t)
	admin := login(t, r, "admin", "admin123")

	w := postForm(r, "/attendance", url.Values{
		"student_name": {"John Doe"},
		"class_name":   {"Mathematics"},
		"date":         {"2024-02-01"},
		"status":       {"absent"},
	}, admin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Absent")

	records := s.AttendanceRecords()
	require.Len(t, records, 1)
	assert.Equal(t, "absent", records[0].Status)
	assert.NotEmpty(t, records[0].RecordedAt)
}

func TestAttendanceRejectsUnknownStatus(t *testing.T) {
	r, s, _ := setup(t)
	admin := login(t, r, "admin", "admin123")

	w := postForm(r, "/attendance", url.Values{
		"student_name": {"John Doe"},
		"class_name":   {"Mathematics"},
		"date":         {"2024-02-01"},
		"status":       {"late"},
	}, admin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.AttendanceRecords())
}

func TestAdminCanPostAssignment(t *testing.T) {
	r, s, _ := setup(t)
	admin := login(t, r, "admin", "admin123")

	w := postForm(r, "/assignments", url.Values{
		"title":       {"Essay"},
		"description": {"Write about Go"},
		"due_date":    {"2024-03-01"},
		"link":        {"https://drive.example.com/essay"},
	}, admin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Essay")
	assert.Contains(t, w.Body.String(), "https://drive.example.com/essay")
	require.Len(t, s.AllAssignments(), 1)
}

func TestAssignmentTitleIsEscaped(t *testing.T) {
	r, _, _ := setup(t)
	admin := login(t, r, "admin", "admin123")

	w := postForm(r, "/assignments", url.Values{
		"title":       {"<script>alert(1)</script>"},
		"description": {"desc"},
		"due_date":    {"2024-03-01"},
		"link":        {"https://example.com"},
	}, admin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}

func TestCalendarListsEventsNewestFirst(t *testing.T) {
	r, _, _ := setup(t)
	admin := login(t, r, "admin", "admin123")

	for _, ev := range [][2]string{
		{"Midterm", "2024-03-10"},
		{"Finals", "2024-06-20"},
	} {
		w := postForm(r, "/calendar", url.Values{
			"event_name":  {ev[0]},
			"event_date":  {ev[1]},
			"description": {"exam period"},
		}, admin)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := get(r, "/calendar", admin)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Finals"), strings.Index(body, "Midterm"),
		"later event should render first")
}
