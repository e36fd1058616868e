package middleware

import (
	"net/http"

	"marketing-site-backend/internal/delivery/http/response"
	"marketing-site-backend/pkg/apperror"
	"marketing-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts a panic in any later handler into the standard 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "path", c.Request.URL.Path, "panic", recovered, "request_id", c.GetString(RequestIDKey))
		response.Error(c, http.StatusInternalServerError, apperror.UnexpectedErrorMessage)
		c.Abort()
	})
}
