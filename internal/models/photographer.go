package models

import (
	"time"

	"github.com/google/uuid"
)

type Photographer struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	HourlyRate      float64   `json:"hourly_rate"`
	Rating          float64   `json:"rating"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PhotographerDetail is the full profile page: card, offered categories and portfolio.
type PhotographerDetail struct {
	Photographer
	Categories []Category       `json:"categories"`
	Portfolio  []PortfolioImage `json:"portfolio"`
}

type PhotographerSort string

const (
	SortRating   PhotographerSort = "rating"
	SortRateAsc  PhotographerSort = "rate_asc"
	SortRateDesc PhotographerSort = "rate_desc"
	SortNewest   PhotographerSort = "newest"
	SortRandom   PhotographerSort = "random"
)

func (s PhotographerSort) Valid() bool {
	switch s {
	case SortRating, SortRateAsc, SortRateDesc, SortNewest, SortRandom:
		return true
	}
	return false
}

type PhotographerFilter struct {
	Category  string           `query:"category"`
	MinRating float64          `query:"min_rating"`
	Location  string           `query:"location"`
	Sort      PhotographerSort `query:"sort"`
	Limit     int              `query:"limit"`
	Offset    int              `query:"offset"`
}

// ProfileUpdate carries a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string  `json:"name"`
	Bio        *string  `json:"bio"`
	Location   *string  `json:"location"`
	HourlyRate *float64 `json:"hourly_rate"`
}
