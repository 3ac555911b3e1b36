package repository

import (
	"context"
	"errors"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `b.id, b.client_id, b.photographer_id, b.category_id, b.status, b.message,
	b.event_date, b.created_at, b.updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.ClientID, &b.PhotographerID, &b.CategoryID, &b.Status, &b.Message,
		&b.EventDate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := `INSERT INTO booking_requests (client_id, photographer_id, category_id, status, message, event_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, b.ClientID, b.PhotographerID, b.CategoryID, b.Status, b.Message, b.EventDate).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return mapErr(err)
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM booking_requests b WHERE b.id = $1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return b, nil
}

// ListForClient returns the requests a client sent, newest first.
func (r *BookingRepository) ListForClient(ctx context.Context, clientID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error) {
	return r.listViews(ctx, "b.client_id", clientID, status)
}

// ListForPhotographer returns the requests addressed to a photographer, newest first.
func (r *BookingRepository) ListForPhotographer(ctx context.Context, photographerID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error) {
	return r.listViews(ctx, "b.photographer_id", photographerID, status)
}

func (r *BookingRepository) listViews(ctx context.Context, ownerColumn string, ownerID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error) {
	var w whereBuilder
	w.add(ownerColumn+` = ?`, ownerID)
	if status != nil {
		w.add(`b.status = ?`, string(*status))
	}

	query := `SELECT ` + bookingColumns + `, c.name, p.name, u.email
		FROM booking_requests b
		JOIN categories c ON c.id = b.category_id
		JOIN photographers p ON p.id = b.photographer_id
		JOIN users u ON u.id = b.client_id` + w.sql() + `
		ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BookingView
	for rows.Next() {
		var v models.BookingView
		err := rows.Scan(&v.ID, &v.ClientID, &v.PhotographerID, &v.CategoryID, &v.Status, &v.Message,
			&v.EventDate, &v.CreatedAt, &v.UpdatedAt, &v.CategoryName, &v.PhotographerName, &v.ClientEmail)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking from one status to another. It fails with
// ErrStatusChanged when the booking is no longer in status from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.BookingStatus) (*models.Booking, error) {
	query := `UPDATE booking_requests b SET status = $3, updated_at = now()
		WHERE b.id = $1 AND b.status = $2
		RETURNING ` + bookingColumns
	b, err := scanBooking(r.pool.QueryRow(ctx, query, id, string(from), string(to)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatusChanged
		}
		return nil, mapErr(err)
	}
	return b, nil
}
