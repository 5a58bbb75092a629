package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/response"
	"github.com/campusworks/student-portal-api/pkg/storage"
)

// FileHandler serves stored uploads back as download attachments.
type FileHandler struct {
	blobs *storage.LocalStorage
}

// NewFileHandler constructs FileHandler.
func NewFileHandler(blobs *storage.LocalStorage) *FileHandler {
	return &FileHandler{blobs: blobs}
}

// Download godoc
// @Summary Download a stored upload
// @Tags Files
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /uploads/{filename} [get]
func (h *FileHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	// Any retrieval failure collapses to 404, cause undistinguished.
	file, err := h.blobs.Open(filename)
	if err != nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	path := file.Name()
	file.Close() //nolint:errcheck

	c.FileAttachment(path, filename)
}
