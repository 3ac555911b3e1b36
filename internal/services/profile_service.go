package services

import (
	"context"
	"errors"
	"strings"

	"photomarket/internal/models"
	"photomarket/internal/repository"
	"photomarket/internal/storage"

	"github.com/google/uuid"
)

// ProfileService lets a photographer manage their own card.
type ProfileService struct {
	photographers PhotographerStore
	listing       *ListingService
	uploader      *Uploader
}

func NewProfileService(photographers PhotographerStore, listing *ListingService, uploader *Uploader) *ProfileService {
	return &ProfileService{photographers: photographers, listing: listing, uploader: uploader}
}

func (s *ProfileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.PhotographerDetail, error) {
	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return nil, err
	}
	return s.listing.detail(ctx, p)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.Photographer, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, invalid("name", "cannot be empty")
		}
		upd.Name = &name
	}
	if upd.Location != nil {
		loc := strings.TrimSpace(*upd.Location)
		upd.Location = &loc
	}
	if upd.HourlyRate != nil && *upd.HourlyRate < 0 {
		return nil, invalid("hourly_rate", "must not be negative")
	}

	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return nil, err
	}
	updated, err := s.photographers.UpdateProfile(ctx, p.ID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// UploadProfileImage stores a new avatar and returns its public URL.
func (s *ProfileService) UploadProfileImage(ctx context.Context, userID uuid.UUID, up *Upload) (string, error) {
	if _, err := s.uploader.Validate(up); err != nil {
		return "", err
	}
	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return "", err
	}

	key, url, err := s.uploader.Put(ctx, storage.FolderProfile, p.ID, up)
	if err != nil {
		return "", err
	}
	if err := s.photographers.SetProfileImage(ctx, p.ID, url); err != nil {
		s.uploader.Discard(ctx, key)
		return "", err
	}
	return url, nil
}
