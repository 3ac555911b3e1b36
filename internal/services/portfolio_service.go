package services

import (
	"context"
	"errors"
	"strings"

	"photomarket/internal/models"
	"photomarket/internal/repository"
	"photomarket/internal/storage"
	"photomarket/internal/utils"

	"github.com/google/uuid"
)

type PortfolioService struct {
	portfolio     PortfolioStore
	photographers PhotographerStore
	uploader      *Uploader
	store         storage.Store
}

func NewPortfolioService(portfolio PortfolioStore, photographers PhotographerStore, uploader *Uploader) *PortfolioService {
	return &PortfolioService{
		portfolio:     portfolio,
		photographers: photographers,
		uploader:      uploader,
		store:         uploader.store,
	}
}

func (s *PortfolioService) Upload(ctx context.Context, userID uuid.UUID, up *Upload, title, description string) (*models.PortfolioImage, error) {
	if _, err := s.uploader.Validate(up); err != nil {
		return nil, err
	}
	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return nil, err
	}

	key, url, err := s.uploader.Put(ctx, storage.FolderPortfolio, p.ID, up)
	if err != nil {
		return nil, err
	}

	img := &models.PortfolioImage{
		ID:             uuid.New(),
		PhotographerID: p.ID,
		URL:            url,
		StorageKey:     key,
		Title:          strings.TrimSpace(title),
		Description:    strings.TrimSpace(description),
	}
	if err := s.portfolio.Create(ctx, img); err != nil {
		s.uploader.Discard(ctx, key)
		return nil, err
	}
	return img, nil
}

func (s *PortfolioService) Update(ctx context.Context, userID, id uuid.UUID, upd models.PortfolioUpdate) (*models.PortfolioImage, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		upd.Title = &t
	}
	if upd.Description != nil {
		d := strings.TrimSpace(*upd.Description)
		upd.Description = &d
	}
	img, err := s.portfolio.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return img, nil
}

// Delete removes the row, then the blob. A blob that fails to delete is only logged.
func (s *PortfolioService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	img, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.portfolio.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if img.StorageKey != "" {
		utils.LogError(s.store.Delete(ctx, img.StorageKey), "delete portfolio blob")
	}
	return nil
}

func (s *PortfolioService) owned(ctx context.Context, userID, id uuid.UUID) (*models.PortfolioImage, error) {
	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return nil, err
	}
	img, err := s.portfolio.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if img.PhotographerID != p.ID {
		return nil, ErrForbidden
	}
	return img, nil
}
