package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public intake forms keep their historical response shape:
// {success, message, errors} with real HTTP status codes, unlike the
// admin envelope.

// FormSuccess writes a public form success body.
func FormSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// FormValidationError writes a 400 with the field-error map.
func FormValidationError(c *gin.Context, message string, errors map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"errors":  errors,
	})
}

// FormError writes a public form failure body with the given HTTP
// status.
func FormError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
