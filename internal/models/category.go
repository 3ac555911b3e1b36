package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID             uuid.UUID `json:"id"`
	PhotographerID uuid.UUID `json:"photographer_id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
