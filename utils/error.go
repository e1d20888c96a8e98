package utils

import (
	"net/http"

	"quickscan/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FailureResponse is the uniform failure envelope returned by every endpoint.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, FailureResponse{
					Success: false,
					Message: "Internal Server Error",
					Error:   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONFailure sends the standardized failure envelope. The underlying error
// detail is only surfaced outside production.
func JSONFailure(c *gin.Context, status int, message string, err error) {
	logger := GetLogger()
	resp := FailureResponse{Success: false, Message: message}
	if err != nil {
		logger.Warn(message, zap.Error(err))
		if !config.IsProduction() {
			resp.Error = err.Error()
		}
	} else {
		logger.Warn(message)
	}
	c.JSON(status, resp)
}
