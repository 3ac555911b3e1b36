// Package session stores refresh sessions server-side so a client holding only
// a refresh token can get back in after its access token expires.
package session

import (
	"context"
	"errors"
	"time"

	"photomarket/internal/models"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Record struct {
	UserID    uuid.UUID   `json:"user_id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type Store interface {
	Save(ctx context.Context, token string, rec Record, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Record, error)
	Delete(ctx context.Context, token string) error
}
