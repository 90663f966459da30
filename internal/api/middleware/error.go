package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api/models"
)

// ErrorHandler recovers from panics and renders the standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		detail := models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
		}
		switch v := recovered.(type) {
		case string:
			detail.Message = v
		case error:
			detail.Message = v.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: detail})
		c.Abort()
	})
}
