package handlers

import (
	"log"
	"time"

	"photomarket/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WebSocketHandler streams booking notifications to the authenticated user.
// Incoming frames are read only to detect disconnects.
func WebSocketHandler(hub *Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		userID, ok := c.Locals(localUserID).(uuid.UUID)
		if !ok {
			_ = c.Close()
			return
		}

		connID := uuid.New().String()
		if hub.Register(connID, userID, c) {
			log.Printf("user %s online", userID)
		}

		defer func() {
			if hub.Unregister(connID) {
				log.Printf("user %s offline", userID)
			}
			c.Close()
		}()

		hub.Send(connID, models.Notification{
			Event:     models.EventConnected,
			Message:   "Listening for booking updates",
			Timestamp: time.Now().Unix(),
		})

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("error: %v", err)
				}
				break
			}
		}
	})
}

// WSUpgradeMiddleware upgrades the connection to WebSocket
func WSUpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
