package handlers

import (
	"net/http"

	"castlechat/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness plus the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
