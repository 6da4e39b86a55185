package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/recorder"
	"github.com/playmatatu/billiards/internal/ws"
)

type fakeTable struct {
	snap   game.Snapshot
	events []game.KeyEvent
	full   bool
}

func (f *fakeTable) Latest() game.Snapshot { return f.snap }

func (f *fakeTable) Submit(ev game.KeyEvent) bool {
	if f.full {
		return false
	}
	f.events = append(f.events, ev)
	return true
}

type fakeLog struct {
	id     uuid.UUID
	events []recorder.EventRow
	err    error
}

func (f *fakeLog) SessionID() uuid.UUID { return f.id }

func (f *fakeLog) Events(context.Context) ([]recorder.EventRow, error) {
	return f.events, f.err
}

func newRouter(table *fakeTable, log *fakeLog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	deps := Deps{Table: table, Hub: ws.NewHub(table)}
	if log != nil {
		deps.Sessions = log
	}
	SetupRoutes(router, deps, &config.Config{Environment: "test"})
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	table := &fakeTable{snap: game.Snapshot{Frame: 42, State: game.StatePaused}}
	w := do(newRouter(table, nil), http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(42), body["frame"])
	assert.Equal(t, "PAUSED", body["state"])
}

func TestGetScene(t *testing.T) {
	table := &fakeTable{snap: game.Snapshot{
		Frame: 3,
		State: game.StateRunning,
		HUD:   game.Text{Value: "FPS: 60.00"},
		Balls: []game.BallSnapshot{{ID: 0, Role: game.RoleCue, Radius: 10}},
	}}
	w := do(newRouter(table, nil), http.MethodGet, "/api/v1/scene", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, uint64(3), snap.Frame)
	assert.Equal(t, "FPS: 60.00", snap.HUD.Value)
	require.Len(t, snap.Balls, 1)
	assert.Equal(t, game.RoleCue, snap.Balls[0].Role)
}

func TestPostInput(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		full   bool
		status int
	}{
		{"press", `{"key":"KeyP","pressed":true}`, false, http.StatusAccepted},
		{"release", `{"key":"ArrowLeft","pressed":false}`, false, http.StatusAccepted},
		{"unknown key", `{"key":"KeyQ","pressed":true}`, false, http.StatusBadRequest},
		{"missing pressed", `{"key":"KeyP"}`, false, http.StatusBadRequest},
		{"missing key", `{"pressed":true}`, false, http.StatusBadRequest},
		{"buffer full", `{"key":"Enter","pressed":true}`, true, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &fakeTable{full: tt.full}
			w := do(newRouter(table, nil), http.MethodPost, "/api/v1/input", tt.body)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusAccepted {
				assert.Len(t, table.events, 1)
			} else {
				assert.Empty(t, table.events)
			}
		})
	}

	table := &fakeTable{}
	do(newRouter(table, nil), http.MethodPost, "/api/v1/input", `{"key":"ArrowLeft","pressed":false}`)
	require.Len(t, table.events, 1)
	assert.Equal(t, game.KeyEvent{Key: game.ArrowLeft, Pressed: false}, table.events[0])
}

func TestSessionEvents(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		w := do(newRouter(&fakeTable{}, nil), http.MethodGet, "/api/v1/session/events", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty", func(t *testing.T) {
		log := &fakeLog{id: uuid.New()}
		w := do(newRouter(&fakeTable{}, log), http.MethodGet, "/api/v1/session/events", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			SessionID uuid.UUID           `json:"session_id"`
			Events    []recorder.EventRow `json:"events"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, log.id, body.SessionID)
		assert.NotNil(t, body.Events)
		assert.Empty(t, body.Events)
	})

	t.Run("store error", func(t *testing.T) {
		log := &fakeLog{id: uuid.New(), err: errors.New("db down")}
		w := do(newRouter(&fakeTable{}, log), http.MethodGet, "/api/v1/session/events", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestViewerPage(t *testing.T) {
	w := do(newRouter(&fakeTable{}, nil), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<canvas")
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	newRouter(&fakeTable{}, nil).ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
