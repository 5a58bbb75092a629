package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/service"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/response"
)

// StudentHandler exposes per-student marks and attendance.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Marks godoc
// @Summary Get a student's marks
// @Tags Students
// @Produce json
// @Param username path string true "Student username"
// @Success 200 {object} map[string]int
// @Router /student/{username}/marks [get]
func (h *StudentHandler) Marks(c *gin.Context) {
	marks, err := h.students.Marks(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, marks)
}

// SaveMark godoc
// @Summary Upsert a mark
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.SaveMarkRequest true "Mark payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /marks [post]
func (h *StudentHandler) SaveMark(c *gin.Context) {
	var req service.SaveMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrMissingFields)
		return
	}
	if err := h.students.SaveMark(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Marks saved")
}

// Attendance godoc
// @Summary Get a student's attendance
// @Tags Students
// @Produce json
// @Param username path string true "Student username"
// @Success 200 {object} models.Attendance
// @Router /student/{username}/attendance [get]
func (h *StudentHandler) Attendance(c *gin.Context) {
	attendance, err := h.students.Attendance(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, attendance)
}

// UpdateAttendance godoc
// @Summary Replace a student's attendance counters
// @Tags Students
// @Accept json
// @Produce json
// @Param username path string true "Student username"
// @Param payload body service.UpdateAttendanceRequest true "Attendance payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /student/{username}/attendance [put]
func (h *StudentHandler) UpdateAttendance(c *gin.Context) {
	var req service.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrMissingFields)
		return
	}
	if err := h.students.UpdateAttendance(c.Request.Context(), c.Param("username"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Attendance updated")
}
