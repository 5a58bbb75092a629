package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/service"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/response"
)

// CertificateHandler exposes certificate upload, listing and review.
type CertificateHandler struct {
	certificates *service.CertificateService
}

// NewCertificateHandler constructs CertificateHandler.
func NewCertificateHandler(certificates *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificates: certificates}
}

// Upload godoc
// @Summary Upload a certificate
// @Tags Certificates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Certificate file"
// @Param student_username formData string true "Student username"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /upload_certificate [post]
func (h *CertificateHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.ErrNoFilePart)
		return
	}
	studentUsername := c.PostForm("student_username")
	if studentUsername == "" || fileHeader.Filename == "" {
		response.Error(c, appErrors.ErrMissingCertUpload)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.ErrNoFilePart)
		return
	}
	defer file.Close() //nolint:errcheck

	path, err := h.certificates.Upload(c.Request.Context(), studentUsername, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Certificate uploaded", gin.H{"file_path": path})
}

// List godoc
// @Summary List certificates by role
// @Tags Certificates
// @Produce json
// @Param role query string true "Role (student or faculty)"
// @Param username query string false "Username (required for students)"
// @Param status query string false "Status filter"
// @Success 200 {array} models.Certificate
// @Failure 400 {object} map[string]interface{}
// @Router /certificates [get]
func (h *CertificateHandler) List(c *gin.Context) {
	certs, err := h.certificates.List(c.Request.Context(), c.Query("role"), c.Query("username"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, certs)
}

// UpdateStatus godoc
// @Summary Review a certificate
// @Tags Certificates
// @Accept json
// @Produce json
// @Param cert_id path int true "Certificate ID"
// @Param payload body service.UpdateCertificateStatusRequest true "Status payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /certificates/{cert_id}/status [put]
func (h *CertificateHandler) UpdateStatus(c *gin.Context) {
	certID, err := strconv.Atoi(c.Param("cert_id"))
	if err != nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}

	var req service.UpdateCertificateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrInvalidStatus)
		return
	}
	if err := h.certificates.UpdateStatus(c.Request.Context(), certID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Certificate status updated")
}
