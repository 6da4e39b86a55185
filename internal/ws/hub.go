package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
	maxMessage = 4096
)

// InputSink accepts key events from viewers.
type InputSink interface {
	Submit(ev game.KeyEvent) bool
}

// Client represents a connected viewer.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of connected viewers.
type Hub struct {
	clients map[string]*Client
	input   InputSink
	mu      sync.RWMutex
}

// NewHub creates a Hub forwarding viewer key events to input.
func NewHub(input InputSink) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		input:   input,
	}
}

// Message is the envelope used in both directions.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

var errNotKeyMessage = errors.New("not a key message")

// DecodeKeyMessage parses a viewer frame of type "key".
func DecodeKeyMessage(raw []byte) (game.KeyEvent, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return game.KeyEvent{}, err
	}
	if msg.Type != "key" {
		return game.KeyEvent{}, errNotKeyMessage
	}
	var ev game.KeyEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		return game.KeyEvent{}, err
	}
	if !game.IsKnownKey(ev.Key) {
		return game.KeyEvent{}, errors.New("unknown key " + string(ev.Key))
	}
	return ev, nil
}

// Publish broadcasts a snapshot to every viewer. Slow viewers lose frames.
func (h *Hub) Publish(snap game.Snapshot) {
	data, err := encode("snapshot", snap)
	if err != nil {
		logrus.Errorf("[WS] Error marshaling snapshot: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			logrus.Debugf("[WS] Send buffer full for viewer %s, dropping frame %d", c.id, snap.Frame)
		}
	}
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades the request and starts the viewer pumps. initial, if
// non-nil, is sent first so a new viewer sees the table immediately.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, initial *game.Snapshot) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("[WS] Upgrade failed: %v", err)
		return
	}

	c := &Client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if initial != nil {
		if data, err := encode("snapshot", initial); err == nil {
			c.send <- data
		}
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	logrus.Infof("[WS] Viewer %s connected (%d total)", c.id, h.ClientCount())

	go c.writePump()
	go h.readPump(c)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
	h.mu.Unlock()
	logrus.Infof("[WS] Viewer %s disconnected", c.id)
}

// readPump forwards key frames to the input sink until the connection closes.
func (h *Hub) readPump(c *Client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessage)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Warnf("[WS] Read error for viewer %s: %v", c.id, err)
			}
			return
		}

		ev, err := DecodeKeyMessage(raw)
		if err != nil {
			c.sendError(err.Error())
			continue
		}
		if h.input != nil && !h.input.Submit(ev) {
			c.sendError("input dropped")
		}
	}
}

// writePump writes messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by unregister; best-effort close frame.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logrus.Warnf("[WS] Write error for viewer %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logrus.Warnf("[WS] Ping error for viewer %s: %v", c.id, err)
				return
			}
		}
	}
}

// sendError sends an error message to the viewer without blocking.
func (c *Client) sendError(message string) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":    "error",
		"message": message,
	})
	select {
	case c.send <- data:
	default:
	}
}

func encode(msgType string, v interface{}) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Data: payload})
}
