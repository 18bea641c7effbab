package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orca2d/vector2"
)

func TestHub_BroadcastReachesConnectedViewer(t *testing.T) {
	server := NewServer()
	ts := httptest.NewServer(server)
	defer ts.Close()

	wsURL := "ws" + ts.URL[len("http"):] + "/ws/agents"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give ServeWS a moment to register the viewer before broadcasting.
	deadline := time.Now().Add(time.Second)
	for server.Hub.ViewerCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, 1, server.Hub.ViewerCount())

	frames := []AgentFrame{{ID: "a1", Position: vector2.New(1, 2), Velocity: vector2.New(0, 1)}}
	server.Hub.Broadcast(frames)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got []AgentFrame
	require.NoError(t, conn.ReadJSON(&got))

	assert.Equal(t, frames, got)
}

func TestHub_HealthEndpoint(t *testing.T) {
	server := NewServer()
	ts := httptest.NewServer(server)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFrameJSON(t *testing.T) {
	frames := []AgentFrame{{ID: "x", Position: vector2.New(0, 0), Velocity: vector2.New(0, 0)}}
	data, err := frameJSON(frames)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"x"`)
}
