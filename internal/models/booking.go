package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

var ErrUnknownBookingStatus = errors.New("unknown booking status")

// ParseBookingStatus accepts the four statuses plus the historical spellings
// "approved" and "canceled".
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return BookingPending, nil
	case "accepted", "approved":
		return BookingAccepted, nil
	case "rejected":
		return BookingRejected, nil
	case "cancelled", "canceled":
		return BookingCancelled, nil
	}
	return "", ErrUnknownBookingStatus
}

type Booking struct {
	ID             uuid.UUID     `json:"id"`
	ClientID       uuid.UUID     `json:"client_id"`
	PhotographerID uuid.UUID     `json:"photographer_id"`
	CategoryID     uuid.UUID     `json:"category_id"`
	Status         BookingStatus `json:"status"`
	Message        string        `json:"message"`
	EventDate      *time.Time    `json:"event_date,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BookingView is a booking with the names a list screen needs.
type BookingView struct {
	Booking
	CategoryName     string `json:"category_name"`
	PhotographerName string `json:"photographer_name"`
	ClientEmail      string `json:"client_email"`
}

type CreateBookingRequest struct {
	PhotographerID uuid.UUID  `json:"photographer_id"`
	CategoryID     uuid.UUID  `json:"category_id"`
	Message        string     `json:"message"`
	EventDate      *time.Time `json:"event_date"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
