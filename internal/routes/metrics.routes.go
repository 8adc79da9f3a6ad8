package routes

import (
	"netpulse/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMetricsRoutes(r *gin.Engine) {
	metrics := r.Group("/metrics")
	{
		metrics.GET("/", controllers.GetStatus)
		metrics.GET("/cpu", controllers.GetCPU)
		metrics.GET("/memory", controllers.GetMemory)
	}
}
