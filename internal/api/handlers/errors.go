package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cloud-ru/rou-lease-go/internal/api/models"
	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// abortWithCalculationError переводит ошибки расчета в HTTP статусы
func abortWithCalculationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calculations.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, "INVALID_INPUT", err)
	case errors.Is(err, calculations.ErrDivisionByZero):
		abortWithError(c, http.StatusUnprocessableEntity, "DIVISION_BY_ZERO", err)
	case errors.Is(err, config.ErrPresetNotFound):
		abortWithError(c, http.StatusNotFound, "PRESET_NOT_FOUND", err)
	default:
		log.Printf("calculation failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}
