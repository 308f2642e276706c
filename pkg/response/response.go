package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldErrors maps a field name to one or more validation messages and is
// the JSON body of every 400 response.
type FieldErrors map[string][]string

// ValidationError writes a 400 with the per-field messages as the body.
func ValidationError(c *gin.Context, fields FieldErrors) {
	c.JSON(http.StatusBadRequest, fields)
}

// FieldError is a convenience for a single-field validation failure.
func FieldError(c *gin.Context, field, message string) {
	ValidationError(c, FieldErrors{field: {message}})
}

// NotFound writes a 404. The body never reveals whether the record exists
// under another owner.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
}

// Unauthorized writes a 401 with an empty body and aborts the request.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

// InternalError writes a 500 with a generic body.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
