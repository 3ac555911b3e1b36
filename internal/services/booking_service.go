package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"photomarket/internal/metrics"
	"photomarket/internal/models"
	"photomarket/internal/repository"

	"github.com/google/uuid"
)

const maxBookingMessage = 2000

type actor int

const (
	actorClient actor = 1 << iota
	actorPhotographer
)

// transitions lists, per current status, the allowed targets and who may move there.
var transitions = map[models.BookingStatus]map[models.BookingStatus]actor{
	models.BookingPending: {
		models.BookingAccepted:  actorPhotographer,
		models.BookingRejected:  actorPhotographer,
		models.BookingCancelled: actorClient | actorPhotographer,
	},
	models.BookingAccepted: {
		models.BookingCancelled: actorClient | actorPhotographer,
	},
}

type BookingService struct {
	bookings      BookingStore
	categories    CategoryStore
	photographers PhotographerStore
	notifier      Notifier
}

func NewBookingService(bookings BookingStore, categories CategoryStore, photographers PhotographerStore, notifier Notifier) *BookingService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &BookingService{
		bookings:      bookings,
		categories:    categories,
		photographers: photographers,
		notifier:      notifier,
	}
}

func (s *BookingService) Create(ctx context.Context, clientID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.PhotographerID == uuid.Nil {
		return nil, invalid("photographer_id", "is required")
	}
	if req.CategoryID == uuid.Nil {
		return nil, invalid("category_id", "is required")
	}
	message := strings.TrimSpace(req.Message)
	if len(message) > maxBookingMessage {
		return nil, invalid("message", "is too long")
	}

	p, err := s.photographers.GetByID(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID == clientID {
		return nil, ErrSelfBooking
	}

	cat, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryMismatch
		}
		return nil, err
	}
	if cat.PhotographerID != p.ID {
		return nil, ErrCategoryMismatch
	}

	b := &models.Booking{
		ID:             uuid.New(),
		ClientID:       clientID,
		PhotographerID: p.ID,
		CategoryID:     cat.ID,
		Status:         models.BookingPending,
		Message:        message,
		EventDate:      req.EventDate,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	metrics.IncBookingCreated()

	s.notifier.SendToUser(p.UserID, models.Notification{
		Event:     models.EventBookingCreated,
		BookingID: b.ID,
		Status:    b.Status,
		Booking:   b,
		Timestamp: time.Now().Unix(),
	})

	return b, nil
}

// List returns the caller's bookings. Photographers see requests addressed to
// them unless asClient is set.
func (s *BookingService) List(ctx context.Context, userID uuid.UUID, status string, asClient bool) ([]models.BookingView, error) {
	var filter *models.BookingStatus
	if status != "" {
		st, err := models.ParseBookingStatus(status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		filter = &st
	}

	var (
		views []models.BookingView
		err   error
	)
	p, perr := s.photographers.GetByUserID(ctx, userID)
	switch {
	case perr == nil && !asClient:
		views, err = s.bookings.ListForPhotographer(ctx, p.ID, filter)
	case perr == nil || errors.Is(perr, repository.ErrNotFound):
		views, err = s.bookings.ListForClient(ctx, userID, filter)
	default:
		return nil, perr
	}
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []models.BookingView{}
	}
	return views, nil
}

// UpdateStatus moves a booking to status on behalf of userID.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID uuid.UUID, status string) (*models.Booking, error) {
	to, err := models.ParseBookingStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := s.photographers.GetByID(ctx, b.PhotographerID)
	if err != nil {
		return nil, err
	}

	var who actor
	if b.ClientID == userID {
		who |= actorClient
	}
	if p.UserID == userID {
		who |= actorPhotographer
	}
	if who == 0 {
		return nil, ErrForbidden
	}

	if b.Status == to {
		return b, nil
	}

	allowed, ok := transitions[b.Status][to]
	if !ok {
		return nil, ErrInvalidTransition
	}
	if allowed&who == 0 {
		return nil, ErrForbidden
	}

	updated, err := s.bookings.UpdateStatus(ctx, b.ID, b.Status, to)
	if err != nil {
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, ErrConflict
		}
		return nil, err
	}
	metrics.IncBookingStatus(string(to))

	event := models.Notification{
		Event:     models.EventBookingStatus,
		BookingID: updated.ID,
		Status:    updated.Status,
		Booking:   updated,
		Timestamp: time.Now().Unix(),
	}
	if who&actorClient == 0 {
		s.notifier.SendToUser(updated.ClientID, event)
	}
	if who&actorPhotographer == 0 {
		s.notifier.SendToUser(p.UserID, event)
	}

	return updated, nil
}

func (s *BookingService) Cancel(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	return s.UpdateStatus(ctx, userID, bookingID, string(models.BookingCancelled))
}
