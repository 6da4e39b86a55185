package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthCheck returns server health status
func HealthCheck(table Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := table.Latest()
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "billiards-table",
			"version": version,
			"uptime":  time.Since(startTime).String(),
			"frame":   snap.Frame,
			"state":   snap.State,
		})
	}
}
