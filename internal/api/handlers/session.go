package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/recorder"
)

// SessionLog is the control-event recorder, if one is configured.
type SessionLog interface {
	SessionID() uuid.UUID
	Events(ctx context.Context) ([]recorder.EventRow, error)
}

// GetSessionEvents lists the pause, resume and step events recorded for the
// current session.
func GetSessionEvents(log SessionLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if log == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "recording is disabled"})
			return
		}
		events, err := log.Events(c.Request.Context())
		if err != nil {
			logrus.Errorf("[DB] Failed to list events for session %s: %v", log.SessionID(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
			return
		}
		if events == nil {
			events = []recorder.EventRow{}
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id": log.SessionID(),
			"events":     events,
		})
	}
}
