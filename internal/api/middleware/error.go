package middleware

import (
	"log"
	"net/http"

	"github.com/cloud-ru/rou-lease-go/internal/api/models"
	"github.com/gin-gonic/gin"
)

// ErrorHandler перехватывает панику и отвечает ошибкой INTERNAL_ERROR
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		message := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
