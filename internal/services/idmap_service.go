package services

import (
	"context"
	"errors"

	"photomarket/internal/repository"

	"github.com/google/uuid"
)

// IDMapService maps integer ids of the legacy "Photographers" table to UUIDs.
type IDMapService struct {
	ids           IDMapStore
	photographers PhotographerStore
}

func NewIDMapService(ids IDMapStore, photographers PhotographerStore) *IDMapService {
	return &IDMapService{ids: ids, photographers: photographers}
}

// ResolveUUID returns nil when legacyID has no mapping.
func (s *IDMapService) ResolveUUID(ctx context.Context, legacyID int64) (*uuid.UUID, error) {
	id, err := s.ids.GetUUID(ctx, legacyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &id, nil
}

// ResolveLegacyID returns nil when id has no mapping.
func (s *IDMapService) ResolveLegacyID(ctx context.Context, id uuid.UUID) (*int64, error) {
	legacyID, err := s.ids.GetLegacyID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &legacyID, nil
}

// EnsureUUID returns the mapping for legacyID, creating one if the legacy row
// exists. Unknown legacy ids resolve to nil.
func (s *IDMapService) EnsureUUID(ctx context.Context, legacyID int64) (*uuid.UUID, error) {
	existing, err := s.ResolveUUID(ctx, legacyID)
	if err != nil || existing != nil {
		return existing, err
	}

	ok, err := s.photographers.LegacyExists(ctx, legacyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	mapped, err := s.ids.InsertIfAbsent(ctx, legacyID, uuid.New())
	if errors.Is(err, repository.ErrNotFound) {
		// lost the insert race and the winner was not yet visible
		return s.ResolveUUID(ctx, legacyID)
	}
	if err != nil {
		return nil, err
	}
	return &mapped, nil
}

// Backfill maps every unmapped legacy row and reports how many mappings it created.
func (s *IDMapService) Backfill(ctx context.Context) (int, error) {
	pending, err := s.ids.ListUnmapped(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, legacyID := range pending {
		fresh := uuid.New()
		mapped, err := s.ids.InsertIfAbsent(ctx, legacyID, fresh)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return created, err
		}
		if mapped == fresh {
			created++
		}
	}
	return created, nil
}
