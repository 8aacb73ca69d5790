package api

import (
	"net/http"

	"github.com/cloud-ru/rou-lease-go/internal/api/handlers"
	"github.com/cloud-ru/rou-lease-go/internal/api/middleware"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/cloud-ru/rou-lease-go/internal/tools"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

// NewRouter собирает gin роутер со всеми маршрутами API
func NewRouter(cfg *config.Config, tracer trace.Tracer, presets []config.Preset) *gin.Engine {
	if cfg.APIEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics())

	leaseHandler := handlers.NewLeaseHandler(cfg, tracer, presets)
	toolsHandler := handlers.NewToolsHandler(tools.Registry(cfg, tracer))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/defaults", leaseHandler.Defaults)
		v1.GET("/presets", leaseHandler.ListPresets)

		v1.POST("/lease/calculate", leaseHandler.Calculate)
		v1.POST("/lease/schedule.csv", leaseHandler.ExportCSV)
		v1.POST("/lease/report", leaseHandler.Report)

		v1.GET("/tools", toolsHandler.ListTools)
		v1.POST("/tools/:name", toolsHandler.Invoke)
	}

	return router
}
