package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusworks/student-portal-api/internal/models"
	"github.com/campusworks/student-portal-api/internal/service"
)

func newStudentRouter(marks *fakeMarkRepo, students *fakeStudentRepo) *gin.Engine {
	h := NewStudentHandler(service.NewStudentService(marks, students, nil, nil))
	r := gin.New()
	r.GET("/student/:username/marks", h.Marks)
	r.POST("/marks", h.SaveMark)
	r.GET("/student/:username/attendance", h.Attendance)
	r.PUT("/student/:username/attendance", h.UpdateAttendance)
	return r
}

func TestMarksEndpointPreservesZero(t *testing.T) {
	marks := &fakeMarkRepo{byStudent: map[string]map[string]int{
		"s2": {"math": 88, "physics": 0},
	}}
	r := newStudentRouter(marks, &fakeStudentRepo{})

	w := performJSON(t, r, http.MethodGet, "/student/s2/marks", "")
	requireStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"math":88,"physics":0}`, w.Body.String())
}

func TestMarksEndpointUnknownStudentEmptyObject(t *testing.T) {
	r := newStudentRouter(&fakeMarkRepo{}, &fakeStudentRepo{})

	w := performJSON(t, r, http.MethodGet, "/student/ghost/marks", "")
	requireStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestSaveMarkEndpoint(t *testing.T) {
	marks := &fakeMarkRepo{}
	r := newStudentRouter(marks, &fakeStudentRepo{})

	w := performJSON(t, r, http.MethodPost, "/marks",
		`{"student_username":"s2","subject":"math","marks":0}`)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Marks saved", decodeBody(t, w)["message"])
	assert.Equal(t, 0, marks.byStudent["s2"]["math"])
}

func TestSaveMarkEndpointMissingMarks(t *testing.T) {
	r := newStudentRouter(&fakeMarkRepo{}, &fakeStudentRepo{})

	w := performJSON(t, r, http.MethodPost, "/marks", `{"student_username":"s2","subject":"math"}`)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Missing fields", decodeBody(t, w)["message"])
}

func TestAttendanceEndpointDefaultsToZeroes(t *testing.T) {
	r := newStudentRouter(&fakeMarkRepo{}, &fakeStudentRepo{})

	w := performJSON(t, r, http.MethodGet, "/student/ghost/attendance", "")
	requireStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"totalDays":0,"attendedDays":0}`, w.Body.String())
}

func TestUpdateAttendanceEndpoint(t *testing.T) {
	students := &fakeStudentRepo{}
	r := newStudentRouter(&fakeMarkRepo{}, students)

	w := performJSON(t, r, http.MethodPut, "/student/s2/attendance",
		`{"totalDays":20,"attendedDays":18}`)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Attendance updated", decodeBody(t, w)["message"])
	assert.Equal(t, &models.Attendance{TotalDays: 20, AttendedDays: 18}, students.attendance["s2"])
}

func TestUpdateAttendanceEndpointMissingCounter(t *testing.T) {
	r := newStudentRouter(&fakeMarkRepo{}, &fakeStudentRepo{})

	w := performJSON(t, r, http.MethodPut, "/student/s2/attendance", `{"totalDays":20}`)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Missing fields", decodeBody(t, w)["message"])
}

// Attendance rows are not validated against users, so unknown usernames are
// accepted and stored.
func TestUpdateAttendanceEndpointUnknownUsernameAccepted(t *testing.T) {
	students := &fakeStudentRepo{}
	r := newStudentRouter(&fakeMarkRepo{}, students)

	w := performJSON(t, r, http.MethodPut, "/student/nobody/attendance",
		`{"totalDays":1,"attendedDays":1}`)
	requireStatus(t, w, http.StatusOK)
	assert.NotNil(t, students.attendance["nobody"])
}
