package events

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestClient(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(ClusterStatusEvent{
		ClusterID:         4,
		PaymentStatus:     "paid",
		TotalTickets:      "100",
		TotalTransactions: "100",
	})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got ClusterStatusEvent
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, uint(4), got.ClusterID)
	assert.Equal(t, "paid", got.PaymentStatus)
}

func TestBroadcastDropsDeadClients(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	// Writes only start failing once the close has propagated, so keep
	// broadcasting until the hub notices.
	assert.Eventually(t, func() bool {
		hub.Broadcast(ClusterStatusEvent{ClusterID: 1})
		return hub.ClientCount() == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestUnregisterRemovesClient(t *testing.T) {
	hub := NewHub()
	dialTestClient(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.mu.Lock()
	var registered *websocket.Conn
	for c := range hub.clients {
		registered = c
	}
	hub.mu.Unlock()

	hub.Unregister(registered)
	assert.Equal(t, 0, hub.ClientCount())
}
