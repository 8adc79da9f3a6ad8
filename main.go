package main

import (
	"log"
	"net/http"

	"netpulse/internal/config"
	"netpulse/internal/middleware"
	"netpulse/internal/routes"
	"netpulse/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	middleware.GlobalSecurityLogger = &middleware.SecurityLogger{}
	services.InitAuthService(cfg.TokenSecret, cfg.TokenExpiry)
	hub := services.InitWebSocketHub()

	source := services.NewCounterSource(cfg.ProcNetDev)
	parser := services.NewStatsParser(cfg.IgnorePrefixes)
	sampler := services.InitSampler(source, parser)

	// Every tick lands in the hub; connected clients render the string
	err = sampler.Start(cfg.SampleInterval, func(download, upload string) {
		hub.BroadcastSpeed(download, upload)
	})
	if err != nil {
		log.Fatalf("failed to start sampler: %v", err)
	}
	defer sampler.Stop()

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	routes.RegisterSpeedRoutes(r)
	routes.RegisterMetricsRoutes(r)
	routes.RegisterAuthRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sampling": sampler.Running()})
	})

	r.Run(cfg.ListenAddr)
}
