package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"photomarket/internal/models"
	"photomarket/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListingService serves the read-only browse screens.
type ListingService struct {
	photographers PhotographerStore
	categories    CategoryStore
	portfolio     PortfolioStore
	shuffle       func(n int, swap func(i, j int))
}

func NewListingService(photographers PhotographerStore, categories CategoryStore, portfolio PortfolioStore) *ListingService {
	return &ListingService{
		photographers: photographers,
		categories:    categories,
		portfolio:     portfolio,
		shuffle:       rand.Shuffle,
	}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *ListingService) ListPhotographers(ctx context.Context, f models.PhotographerFilter) ([]models.Photographer, error) {
	if f.Sort == "" {
		f.Sort = models.SortRating
	}
	if !f.Sort.Valid() {
		return nil, invalid("sort", "must be one of rating, rate_asc, rate_desc, newest, random")
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return nil, invalid("min_rating", "must be between 0 and 5")
	}
	f.Category = strings.TrimSpace(f.Category)
	f.Location = strings.TrimSpace(f.Location)
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	rows, err := s.photographers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Photographer{}
	}
	if f.Sort == models.SortRandom {
		s.shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	}
	return rows, nil
}

func (s *ListingService) GetPhotographer(ctx context.Context, id uuid.UUID) (*models.PhotographerDetail, error) {
	p, err := s.photographers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.detail(ctx, p)
}

func (s *ListingService) detail(ctx context.Context, p *models.Photographer) (*models.PhotographerDetail, error) {
	cats, err := s.categories.ListByPhotographer(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	images, err := s.portfolio.List(ctx, models.PortfolioFilter{
		PhotographerID: &p.ID,
		Order:          models.PortfolioNewest,
		Limit:          MaxPageSize,
	})
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []models.Category{}
	}
	if images == nil {
		images = []models.PortfolioImage{}
	}
	return &models.PhotographerDetail{Photographer: *p, Categories: cats, Portfolio: images}, nil
}

func (s *ListingService) ListPortfolio(ctx context.Context, f models.PortfolioFilter) ([]models.PortfolioImage, error) {
	switch f.Order {
	case "":
		f.Order = models.PortfolioNewest
	case models.PortfolioNewest, models.PortfolioRandom:
	default:
		return nil, invalid("order", "must be newest or random")
	}
	f.Category = strings.TrimSpace(f.Category)
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	rows, err := s.portfolio.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.PortfolioImage{}
	}
	if f.Order == models.PortfolioRandom {
		s.shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	}
	return rows, nil
}

func (s *ListingService) ListCategories(ctx context.Context, photographerID uuid.UUID) ([]models.Category, error) {
	if _, err := s.photographers.GetByID(ctx, photographerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cats, err := s.categories.ListByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []models.Category{}
	}
	return cats, nil
}

func (s *ListingService) ListCategoryNames(ctx context.Context) ([]string, error) {
	names, err := s.categories.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
