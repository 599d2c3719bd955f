package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/models"
)

// HealthController answers liveness probes.
type HealthController struct{}

func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
