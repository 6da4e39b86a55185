package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/api/handlers"
	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/middleware"
	"github.com/playmatatu/billiards/internal/ws"
)

// Deps are the running components the routes talk to. Sessions may be nil
// when recording is disabled.
type Deps struct {
	Table    handlers.Table
	Hub      *ws.Hub
	Sessions handlers.SessionLog
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Deps, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		logrus.Info("[DEV MODE] No-cache headers enabled for all routes")
	}

	router.GET("/", handlers.Viewer)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck(deps.Table))
		v1.GET("/scene", handlers.GetScene(deps.Table))
		v1.POST("/input", handlers.PostInput(deps.Table))
		v1.GET("/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleViewerWebSocket(deps.Hub, deps.Table))
		v1.GET("/session/events", handlers.GetSessionEvents(deps.Sessions))
	}
}
