package services

import (
	"context"

	"photomarket/internal/models"

	"github.com/google/uuid"
)

// The interfaces below are implemented by the repository package.

type UserStore interface {
	Create(ctx context.Context, u *models.User, photographerName string) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type PhotographerStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Photographer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Photographer, error)
	List(ctx context.Context, f models.PhotographerFilter) ([]models.Photographer, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.Photographer, error)
	SetProfileImage(ctx context.Context, id uuid.UUID, url string) error
	LegacyExistsByEmail(ctx context.Context, email string) (bool, error)
	LegacyExists(ctx context.Context, legacyID int64) (bool, error)
}

type CategoryStore interface {
	Create(ctx context.Context, photographerID uuid.UUID, in models.CategoryInput) (*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, in models.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]models.Category, error)
	ListNames(ctx context.Context) ([]string, error)
}

type PortfolioStore interface {
	Create(ctx context.Context, img *models.PortfolioImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioImage, error)
	Update(ctx context.Context, id uuid.UUID, upd models.PortfolioUpdate) (*models.PortfolioImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f models.PortfolioFilter) ([]models.PortfolioImage, error)
}

type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListForClient(ctx context.Context, clientID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error)
	ListForPhotographer(ctx context.Context, photographerID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.BookingStatus) (*models.Booking, error)
}

type IDMapStore interface {
	GetUUID(ctx context.Context, legacyID int64) (uuid.UUID, error)
	GetLegacyID(ctx context.Context, id uuid.UUID) (int64, error)
	InsertIfAbsent(ctx context.Context, legacyID int64, id uuid.UUID) (uuid.UUID, error)
	ListUnmapped(ctx context.Context) ([]int64, error)
}

// Notifier pushes an event to every live connection of a user.
type Notifier interface {
	SendToUser(userID uuid.UUID, message interface{})
}

type noopNotifier struct{}

func (noopNotifier) SendToUser(uuid.UUID, interface{}) {}
