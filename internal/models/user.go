package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RolePhotographer
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
}

// Session is the resolved identity of the caller.
type Session struct {
	UserID         uuid.UUID  `json:"user_id"`
	Email          string     `json:"email"`
	Role           Role       `json:"role"`
	IsPhotographer bool       `json:"is_photographer"`
	PhotographerID *uuid.UUID `json:"photographer_id,omitempty"`
	LegacyID       *int64     `json:"legacy_id,omitempty"`
}
