package ws

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHub(&HubOptions{Logger: logger})
}

func dial(t *testing.T, srv *httptest.Server, channel string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?channel=" + channel
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForConnections(t *testing.T, hub *Hub, channel string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount(channel) != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections on %q, got %d", want, channel, hub.ConnectionCount(channel))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_Broadcast(t *testing.T) {
	hub := testHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv, ChannelAvailability)
	waitForConnections(t, hub, ChannelAvailability, 1)

	hub.Broadcast(ChannelAvailability, []byte(`{"type":"availability.set"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"availability.set"}`, string(message))
}

func TestHub_Shutdown(t *testing.T) {
	hub := testHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv, ChannelAvailability)
	waitForConnections(t, hub, ChannelAvailability, 1)

	hub.Shutdown()

	assert.Equal(t, 0, hub.ConnectionCount(ChannelAvailability))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived, websocket.CloseNormalClosure))
}
