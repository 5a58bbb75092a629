package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
)

// The wire contract for mutations is {"success": bool, "message": string}
// with optional extra fields such as "role" or "file_path". Read endpoints
// return their payload bare (arrays and objects), so they go through Raw.

// Success writes a success body, merging any extra fields into the envelope.
func Success(c *gin.Context, status int, message string, extras ...gin.H) {
	body := gin.H{"success": true, "message": message}
	for _, extra := range extras {
		for k, v := range extra {
			body[k] = v
		}
	}
	c.JSON(status, body)
}

// Raw writes the payload without the success envelope.
func Raw(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error renders a typed error as {"success": false, "message": ...} with its
// HTTP status. Untyped errors surface as a generic 500.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"success": false, "message": appErr.Message})
}
