package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/service"
	"github.com/campusworks/student-portal-api/pkg/response"
)

// ReportHandler serves generated mark and attendance exports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// StudentReport godoc
// @Summary Download a student's PDF report
// @Tags Reports
// @Produce application/pdf
// @Param username path string true "Student username"
// @Success 200 {file} file
// @Router /student/{username}/report [get]
func (h *ReportHandler) StudentReport(c *gin.Context) {
	username := c.Param("username")
	pdf, err := h.reports.StudentReport(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.pdf", username))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// MarksCSV godoc
// @Summary Download all marks as CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 {file} file
// @Router /reports/marks.csv [get]
func (h *ReportHandler) MarksCSV(c *gin.Context) {
	csv, err := h.reports.MarksCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=marks.csv")
	c.Data(http.StatusOK, "text/csv", csv)
}
