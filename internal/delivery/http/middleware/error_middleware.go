package middleware

import (
	"errors"
	"net/http"

	"marketing-site-backend/internal/delivery/http/response"
	"marketing-site-backend/pkg/apperror"
	"marketing-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err, "request_id", c.GetString(RequestIDKey))
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Internal server error", "path", c.FullPath(), "error", err, "request_id", c.GetString(RequestIDKey))
		response.Error(c, http.StatusInternalServerError, apperror.UnexpectedErrorMessage)
	}
}
