package services

import (
	"context"
	"errors"

	"photomarket/internal/models"
	"photomarket/internal/repository"

	"github.com/google/uuid"
)

// IdentityService reconciles the modern and legacy photographer schemas into
// one view of the caller.
type IdentityService struct {
	users         UserStore
	photographers PhotographerStore
	ids           IDMapStore
}

func NewIdentityService(users UserStore, photographers PhotographerStore, ids IDMapStore) *IdentityService {
	return &IdentityService{users: users, photographers: photographers, ids: ids}
}

func (s *IdentityService) ResolveSession(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sess := &models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	candidates := []uuid.UUID{user.ID}
	p, err := s.photographers.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		sess.IsPhotographer = true
		sess.PhotographerID = &p.ID
		candidates = append(candidates, p.ID)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	for _, id := range candidates {
		legacyID, err := s.ids.GetLegacyID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sess.LegacyID = &legacyID
		exists, err := s.photographers.LegacyExists(ctx, legacyID)
		if err != nil {
			return nil, err
		}
		if exists {
			sess.IsPhotographer = true
		}
		break
	}

	if !sess.IsPhotographer {
		exists, err := s.photographers.LegacyExistsByEmail(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		sess.IsPhotographer = exists
	}

	if user.Role == models.RolePhotographer {
		sess.IsPhotographer = true
	}

	return sess, nil
}

// photographerFor returns the photographer row owned by userID.
func photographerFor(ctx context.Context, store PhotographerStore, userID uuid.UUID) (*models.Photographer, error) {
	p, err := store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotPhotographer
		}
		return nil, err
	}
	return p, nil
}
