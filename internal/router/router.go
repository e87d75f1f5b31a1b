package router

import (
	"github.com/gin-gonic/gin"

	"firmas/internal/handler"
)

// Setup configures the Gin engine with the operational routes.
func Setup(healthH *handler.HealthHandler, statsH *handler.StatsHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", healthH.Liveness)
	r.GET("/stats", statsH.Stats)

	return r
}
