package handlers

import (
	"sync"

	"photomarket/internal/utils"

	"github.com/google/uuid"
)

// Hub tracks live websocket connections per user and pushes events to them.
type Hub struct {
	mu sync.RWMutex
	// connID -> connection
	conns map[string]*hubConn
}

type hubConn struct {
	userID uuid.UUID
	conn   utils.JSONWriter
	// writes to one connection must not interleave
	writeMu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*hubConn)}
}

// Register stores a new connection. Returns true if this is the user's first live connection.
func (h *Hub) Register(connID string, userID uuid.UUID, conn utils.JSONWriter) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	wasOnline := false
	for _, c := range h.conns {
		if c.userID == userID {
			wasOnline = true
			break
		}
	}
	h.conns[connID] = &hubConn{userID: userID, conn: conn}
	return !wasOnline
}

// Unregister removes a connection. Returns true if it was the user's last one.
func (h *Hub) Unregister(connID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conns[connID]
	if !ok {
		return false
	}
	delete(h.conns, connID)

	for _, other := range h.conns {
		if other.userID == c.userID {
			return false
		}
	}
	return true
}

func (h *Hub) IsUserOnline(userID uuid.UUID) bool {
	return h.CountUserConnections(userID) > 0
}

func (h *Hub) CountUserConnections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	count := 0
	for _, c := range h.conns {
		if c.userID == userID {
			count++
		}
	}
	return count
}

// SendToUser sends a message to all connections of a user. Failed writes are
// logged; the read loop notices the broken connection and unregisters it.
func (h *Hub) SendToUser(userID uuid.UUID, message interface{}) {
	h.mu.RLock()
	var targets []*hubConn
	for _, c := range h.conns {
		if c.userID == userID {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.send(message)
	}
}

// Send writes to a single connection by id.
func (h *Hub) Send(connID string, message interface{}) {
	h.mu.RLock()
	c, ok := h.conns[connID]
	h.mu.RUnlock()
	if ok {
		c.send(message)
	}
}

func (c *hubConn) send(message interface{}) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := utils.SendJSON(c.conn, message); err != nil {
		utils.LogError(err, "SendToUser")
	}
}
