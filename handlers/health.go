package handlers

import (
	"net/http"

	"dairy/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness together with the last dependency check.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Hi, I'm the dairy server",
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
