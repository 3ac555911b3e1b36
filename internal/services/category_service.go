package services

import (
	"context"
	"errors"
	"strings"

	"photomarket/internal/models"
	"photomarket/internal/repository"

	"github.com/google/uuid"
)

type CategoryService struct {
	categories    CategoryStore
	photographers PhotographerStore
}

func NewCategoryService(categories CategoryStore, photographers PhotographerStore) *CategoryService {
	return &CategoryService{categories: categories, photographers: photographers}
}

func validateCategory(in *models.CategoryInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if in.Price < 0 {
		return invalid("price", "must not be negative")
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, in models.CategoryInput) (*models.Category, error) {
	if err := validateCategory(&in); err != nil {
		return nil, err
	}
	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, p.ID, in)
}

func (s *CategoryService) Update(ctx context.Context, userID, id uuid.UUID, in models.CategoryInput) (*models.Category, error) {
	if err := validateCategory(&in); err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}
	cat, err := s.categories.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	err := s.categories.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrReference):
		return ErrInUse
	}
	return err
}

func (s *CategoryService) owned(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	p, err := photographerFor(ctx, s.photographers, userID)
	if err != nil {
		return nil, err
	}
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cat.PhotographerID != p.ID {
		return nil, ErrForbidden
	}
	return cat, nil
}
