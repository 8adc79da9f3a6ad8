package controllers

import (
	"net/http"

	"netpulse/internal/services"

	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	status, err := services.GetHostStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

func GetCPU(c *gin.Context) {
	cpu, err := services.GetCPUStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cpu)
}

func GetMemory(c *gin.Context) {
	memory, err := services.GetMemoryStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, memory)
}
