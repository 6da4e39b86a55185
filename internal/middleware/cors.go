package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/config"
)

// CORSMiddleware allows the configured viewer origins. In development any
// localhost origin is accepted as well.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	logrus.Infof("[CORS] Environment: %s, allowed origins: %v", cfg.Environment, cfg.AllowedOrigins)

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour, // Cache preflight responses
	}

	origins := cfg.AllowedOrigins
	if cfg.Environment == "development" {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return isLocalOrigin(origin) || contains(origins, origin)
		}
	} else if len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}

	return cors.New(corsConfig)
}

// WebSocketCORSCheck validates WebSocket upgrade origins. Requests without an
// Origin header (non-browser viewers) are let through.
func WebSocketCORSCheck(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.ToLower(c.GetHeader("Upgrade")) != "websocket" {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" || sameHost(origin, c.Request.Host) {
			c.Next()
			return
		}

		allowed := contains(cfg.AllowedOrigins, origin)
		if cfg.Environment == "development" && isLocalOrigin(origin) {
			allowed = true
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "WebSocket origin not allowed"})
			return
		}

		c.Next()
	}
}

func isLocalOrigin(origin string) bool {
	return strings.HasPrefix(origin, "http://localhost:") ||
		strings.HasPrefix(origin, "http://127.0.0.1:")
}

func sameHost(origin, host string) bool {
	o := strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
	return o == host
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
