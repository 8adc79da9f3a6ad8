package controllers

import (
	"net/http"

	"netpulse/internal/services"

	"github.com/gin-gonic/gin"
)

// GetSpeed returns the latest speed snapshot with its display string
func GetSpeed(c *gin.Context) {
	sampler := services.GetSampler()
	if sampler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sampler not initialized"})
		return
	}

	snapshot := sampler.Latest()
	c.JSON(http.StatusOK, gin.H{
		"display":  snapshot.String(),
		"snapshot": snapshot,
	})
}

// GetSpeedDisplay returns just the composed display line as plain text
func GetSpeedDisplay(c *gin.Context) {
	sampler := services.GetSampler()
	if sampler == nil {
		c.String(http.StatusServiceUnavailable, "sampler not initialized")
		return
	}

	c.String(http.StatusOK, sampler.Latest().String())
}

// GetInterfaces returns the current raw counters of all non-ignored
// interfaces, read fresh from the counter source
func GetInterfaces(c *gin.Context) {
	sampler := services.GetSampler()
	if sampler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sampler not initialized"})
		return
	}

	stats, err := sampler.Interfaces()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interfaces": stats})
}
