package models

import "github.com/google/uuid"

// Websocket event names
const (
	EventConnected      = "connected"
	EventBookingCreated = "booking_created"
	EventBookingStatus  = "booking_status"
)

type Notification struct {
	Event     string        `json:"event"`
	BookingID uuid.UUID     `json:"booking_id,omitempty"`
	Status    BookingStatus `json:"status,omitempty"`
	Booking   *Booking      `json:"booking,omitempty"`
	Message   string        `json:"message,omitempty"`
	Timestamp int64         `json:"timestamp"`
}
