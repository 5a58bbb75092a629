package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/service"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/response"
)

// AssignmentHandler exposes assignment creation, listing, submission intake
// and submission remarks.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Create godoc
// @Summary Create an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body service.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrMissingAssignment)
		return
	}
	if err := h.assignments.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Assignment created")
}

// List godoc
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Success 200 {array} models.Assignment
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, assignments)
}

// Submit godoc
// @Summary Submit an assignment file
// @Tags Assignments
// @Accept multipart/form-data
// @Produce json
// @Param assignment_id path int true "Assignment ID"
// @Param file formData file true "Submission file"
// @Param student_username formData string true "Student username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /submit_assignment/{assignment_id} [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("assignment_id"))
	if err != nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.ErrNoFilePart)
		return
	}
	studentUsername := c.PostForm("student_username")
	if studentUsername == "" || fileHeader.Filename == "" {
		response.Error(c, appErrors.ErrNoFileOrUsername)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.ErrNoFilePart)
		return
	}
	defer file.Close() //nolint:errcheck

	path, err := h.assignments.Submit(c.Request.Context(), assignmentID, studentUsername, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "File uploaded successfully", gin.H{"file_path": path})
}

// ListSubmissions godoc
// @Summary List all submissions
// @Tags Assignments
// @Produce json
// @Success 200 {array} models.SubmissionDetail
// @Router /submissions [get]
func (h *AssignmentHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.assignments.ListSubmissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, submissions)
}

type remarksRequest struct {
	Remarks string `json:"remarks"`
}

// UpdateRemarks godoc
// @Summary Set remarks on a submission
// @Tags Assignments
// @Accept json
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Param payload body remarksRequest true "Remarks payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /submission_remarks/{submission_id} [put]
func (h *AssignmentHandler) UpdateRemarks(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("submission_id"))
	if err != nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}

	var req remarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrMissingRemarks)
		return
	}
	if err := h.assignments.UpdateRemarks(c.Request.Context(), submissionID, req.Remarks); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Remarks updated successfully")
}
