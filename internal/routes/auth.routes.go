package routes

import (
	"netpulse/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the token endpoint and the WebSocket
// endpoint that streams speed updates to authenticated clients
func RegisterAuthRoutes(r *gin.Engine) {
	r.GET("/token", controllers.HandleGetToken)
	r.GET("/ws", controllers.HandleWebSocket)
}
