package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes registers the liveness probe.
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})
}
