package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"photomarket/internal/metrics"
	"photomarket/internal/models"
	"photomarket/internal/repository"
	"photomarket/internal/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UserService struct {
	users      UserStore
	sessions   session.Store
	tokens     *TokenManager
	refreshTTL time.Duration
}

func NewUserService(users UserStore, sessions session.Store, tokens *TokenManager, refreshTTL time.Duration) *UserService {
	return &UserService{users: users, sessions: sessions, tokens: tokens, refreshTTL: refreshTTL}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, invalid("email", "is not a valid address")
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if !role.Valid() {
		return nil, invalid("role", "must be client or photographer")
	}
	name := strings.TrimSpace(req.Name)
	if role == models.RolePhotographer && name == "" {
		return nil, invalid("name", "is required for photographers")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user, name); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.IncAuthFailure("unknown_user")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.IncAuthFailure("bad_password")
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user.ID, user.Email, user.Role)
}

// Refresh swaps a refresh token for a new token pair. The old token is spent.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	rec, err := s.Session(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.issue(ctx, user.ID, user.Email, user.Role)
}

func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.Delete(ctx, refreshToken)
}

// Session looks up a stored refresh session without consuming it.
func (s *UserService) Session(ctx context.Context, refreshToken string) (*session.Record, error) {
	if refreshToken == "" {
		return nil, ErrInvalidToken
	}
	rec, err := s.sessions.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			metrics.IncAuthFailure("unknown_session")
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return rec, nil
}

func (s *UserService) ValidateAccessToken(token string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(token)
}

func (s *UserService) GenerateAccessToken(userID uuid.UUID, email string, role models.Role) (string, error) {
	return s.tokens.GenerateAccessToken(userID, email, role)
}

func (s *UserService) issue(ctx context.Context, userID uuid.UUID, email string, role models.Role) (*models.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(userID, email, role)
	if err != nil {
		return nil, err
	}
	refresh, err := NewRefreshToken()
	if err != nil {
		return nil, err
	}

	rec := session.Record{UserID: userID, Email: email, Role: role, CreatedAt: time.Now()}
	if err := s.sessions.Save(ctx, refresh, rec, s.refreshTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       userID,
		Email:        email,
		Role:         role,
	}, nil
}
