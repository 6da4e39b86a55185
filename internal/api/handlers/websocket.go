package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/playmatatu/billiards/internal/ws"
)

// HandleViewerWebSocket streams snapshots to a viewer and reads its keys.
func HandleViewerWebSocket(hub *ws.Hub, table Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := table.Latest()
		hub.ServeWS(c.Writer, c.Request, &snap)
	}
}
