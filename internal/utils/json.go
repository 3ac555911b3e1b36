package utils

import (
	"log"
)

// JSONWriter is satisfied by *websocket.Conn.
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// SendJSON writes a JSON payload to a websocket connection.
// Fiber's websocket connections are not safe for concurrent writes; callers serialise.
func SendJSON(c JSONWriter, payload interface{}) error {
	return c.WriteJSON(payload)
}

// LogError logs an error if it's not nil
func LogError(err error, context string) {
	if err != nil {
		log.Printf("Error [%s]: %v", context, err)
	}
}
