// File: handlers/health.go
package handlers

import (
	"net/http"

	"appointly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot of backing services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
