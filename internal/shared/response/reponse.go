package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope. Ship resources are written raw with JSON.
type Response struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// JSON writes data as the whole body, without an envelope
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Empty writes a status with no body
func Empty(c *gin.Context, statusCode int) {
	c.Status(statusCode)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func MethodNotAllowed(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", message)
}
