package routes

import (
	"netpulse/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSpeedRoutes(r *gin.Engine) {
	speed := r.Group("/speed")
	{
		speed.GET("/", controllers.GetSpeed)
		speed.GET("/display", controllers.GetSpeedDisplay)
		speed.GET("/interfaces", controllers.GetInterfaces)
	}
}
