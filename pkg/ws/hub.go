// Package ws implements the realtime change feed: clients subscribe to a
// channel over a websocket and receive JSON change notifications pushed by
// the domain services.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ChannelAvailability carries availability-override changes.
const ChannelAvailability = "availability"

type HubOptions struct {
	Logger       *logrus.Logger
	CheckOrigin  func(r *http.Request) bool
	WriteTimeout time.Duration
	PingInterval time.Duration
}

type Huber interface {
	http.Handler
	Broadcast(channel string, message []byte)
	ConnectionCount(channel string) int
	Shutdown()
}

type Hub struct {
	logger       *logrus.Logger
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	pingInterval time.Duration

	mu       sync.RWMutex
	channels map[string]map[*connection]struct{}
}

func NewHub(opts *HubOptions) *Hub {
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	pingInterval := opts.PingInterval
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &Hub{
		logger: opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     opts.CheckOrigin,
		},
		writeTimeout: writeTimeout,
		pingInterval: pingInterval,
		channels:     map[string]map[*connection]struct{}{},
	}
}

type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channel := r.URL.Query().Get("channel")
	if channel == "" {
		channel = ChannelAvailability
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("ws: upgrade failed")
		return
	}

	conn := &connection{
		ws:   ws,
		send: make(chan []byte, 64),
	}
	h.join(channel, conn)
	h.logger.WithField("channel", channel).Debug("ws: client connected")

	go h.writePump(conn)
	h.readPump(channel, conn)
}

// Broadcast queues message for every connection subscribed to channel.
// Connections with a saturated send buffer are dropped rather than blocking
// the caller.
func (h *Hub) Broadcast(channel string, message []byte) {
	h.mu.RLock()
	conns := make([]*connection, 0, len(h.channels[channel]))
	for conn := range h.channels[channel] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		select {
		case conn.send <- message:
		default:
			h.logger.WithField("channel", channel).Warn("ws: dropping slow connection")
			h.leave(channel, conn)
		}
	}
}

// Shutdown sends a close frame to every subscribed connection and forgets
// them. The caller stops the HTTP listener first so no new upgrades arrive.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	channels := h.channels
	h.channels = map[string]map[*connection]struct{}{}
	h.mu.Unlock()

	for _, conns := range channels {
		for conn := range conns {
			close(conn.send)
		}
	}
}

func (h *Hub) ConnectionCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

func (h *Hub) join(channel string, conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[channel] == nil {
		h.channels[channel] = map[*connection]struct{}{}
	}
	h.channels[channel][conn] = struct{}{}
}

func (h *Hub) leave(channel string, conn *connection) {
	h.mu.Lock()
	if conns, ok := h.channels[channel]; ok {
		if _, subscribed := conns[conn]; subscribed {
			delete(conns, conn)
			close(conn.send)
		}
		if len(conns) == 0 {
			delete(h.channels, channel)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) readPump(channel string, conn *connection) {
	defer func() {
		h.leave(channel, conn)
		_ = conn.ws.Close()
	}()
	for {
		// Inbound payloads are ignored; reading only surfaces close frames.
		if _, _, err := conn.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *connection) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.ws.Close()
	}()
	for {
		select {
		case message, ok := <-conn.send:
			_ = conn.ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = conn.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := conn.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
