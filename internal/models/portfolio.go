package models

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioImage is an uploaded photo shown on a photographer's page.
type PortfolioImage struct {
	ID             uuid.UUID `json:"id"`
	PhotographerID uuid.UUID `json:"photographer_id"`
	URL            string    `json:"url"`
	StorageKey     string    `json:"-"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

type PortfolioOrder string

const (
	PortfolioNewest PortfolioOrder = "newest"
	PortfolioRandom PortfolioOrder = "random"
)

type PortfolioFilter struct {
	PhotographerID *uuid.UUID     `query:"-"`
	Category       string         `query:"category"`
	Order          PortfolioOrder `query:"order"`
	Limit          int            `query:"limit"`
	Offset         int            `query:"offset"`
}

type PortfolioUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
