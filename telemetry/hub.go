package telemetry

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/orca2d/vector2"
)

// AgentFrame is one agent's position and velocity at a broadcast
// instant, the wire shape Hub.Broadcast sends as JSON.
type AgentFrame struct {
	ID       string          `json:"id"`
	Position vector2.Vector2 `json:"position"`
	Velocity vector2.Vector2 `json:"velocity"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks connected websocket viewers and fans every Broadcast out
// to all of them. A slow or disconnected viewer is dropped rather than
// allowed to block the broadcast of a live step.
type Hub struct {
	mu      sync.Mutex
	viewers map[*websocket.Conn]chan []AgentFrame
}

// NewHub builds an empty Hub.
func NewHub() *Hub {
	return &Hub{viewers: make(map[*websocket.Conn]chan []AgentFrame)}
}

// ServeWS upgrades the HTTP request to a websocket and registers the
// connection as a viewer until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	out := make(chan []AgentFrame, 8)
	h.mu.Lock()
	h.viewers[conn] = out
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.viewers, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for frames := range out {
		if err := conn.WriteJSON(frames); err != nil {
			return
		}
	}
}

// Broadcast sends frames to every connected viewer, non-blockingly;
// a viewer whose outbound buffer is full is dropped (it reconnects and
// starts seeing fresh frames from the next step).
func (h *Hub) Broadcast(frames []AgentFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, out := range h.viewers {
		select {
		case out <- frames:
		default:
			delete(h.viewers, conn)
			close(out)
			conn.Close()
		}
	}
}

// ViewerCount reports how many viewers are currently connected.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// frameJSON is exposed only for tests that need to confirm the wire
// shape without standing up a real websocket connection.
func frameJSON(frames []AgentFrame) ([]byte, error) {
	return json.Marshal(frames)
}
