package handlers

import (
	"fmt"
	"net/http"

	"github.com/cloud-ru/rou-lease-go/internal/api/models"
	"github.com/cloud-ru/rou-lease-go/internal/tools"
	"github.com/gin-gonic/gin"
)

// ToolsHandler открывает инструменты расчета по имени
type ToolsHandler struct {
	registry map[string]tools.ToolHandler
}

// NewToolsHandler создает обработчик инструментов
func NewToolsHandler(registry map[string]tools.ToolHandler) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// ListTools обрабатывает GET /api/v1/tools
func (h *ToolsHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": tools.Names(h.registry)})
}

// Invoke обрабатывает POST /api/v1/tools/:name
func (h *ToolsHandler) Invoke(c *gin.Context) {
	name := c.Param("name")
	handler, ok := h.registry[name]
	if !ok {
		abortWithError(c, http.StatusNotFound, "UNKNOWN_TOOL", fmt.Errorf("unknown tool %q", name))
		return
	}

	var req models.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}

	result, err := handler(c.Request.Context(), req.Params)
	if err != nil {
		abortWithCalculationError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToolResponse{Tool: name, Result: result})
}
