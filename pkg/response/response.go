package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an API error. Message never carries internal detail.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Success sends data as the response body
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response and stops the handler chain
func Error(c *gin.Context, code int, err, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   err,
		Message: message,
	})
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "Internal server error", message)
}

// MethodNotAllowed sends a 405 response
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "Method not allowed", "")
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Too many requests", "Rate limit exceeded. Please try again later.")
}
