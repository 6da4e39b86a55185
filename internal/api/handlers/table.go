package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playmatatu/billiards/internal/game"
)

// Table is the running simulation as seen by the HTTP layer.
type Table interface {
	Latest() game.Snapshot
	Submit(ev game.KeyEvent) bool
}

// GetScene returns the latest table snapshot.
func GetScene(table Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, table.Latest())
	}
}

type inputRequest struct {
	Key     string `json:"key" binding:"required"`
	Pressed *bool  `json:"pressed" binding:"required"`
}

// PostInput queues a key press or release, the HTTP counterpart of the
// viewer socket's key frames.
func PostInput(table Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inputRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key and pressed are required"})
			return
		}

		key := game.KeyCode(req.Key)
		if !game.IsKnownKey(key) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown key", "key": req.Key})
			return
		}

		if !table.Submit(game.KeyEvent{Key: key, Pressed: *req.Pressed}) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "input buffer full"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"queued": true})
	}
}
