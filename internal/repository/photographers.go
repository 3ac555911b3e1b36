package repository

import (
	"context"
	"fmt"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const photographerColumns = `p.id, p.user_id, p.name, p.bio, p.location, p.hourly_rate::float8,
	p.rating::float8, p.profile_image_url, p.created_at, p.updated_at`

type PhotographerRepository struct {
	pool *pgxpool.Pool
}

func NewPhotographerRepository(pool *pgxpool.Pool) *PhotographerRepository {
	return &PhotographerRepository{pool: pool}
}

func scanPhotographer(row pgx.Row) (*models.Photographer, error) {
	var p models.Photographer
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Bio, &p.Location, &p.HourlyRate,
		&p.Rating, &p.ProfileImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotographerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Photographer, error) {
	query := `SELECT ` + photographerColumns + ` FROM photographers p WHERE p.id = $1`
	p, err := scanPhotographer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PhotographerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Photographer, error) {
	query := `SELECT ` + photographerColumns + ` FROM photographers p WHERE p.user_id = $1`
	p, err := scanPhotographer(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

// List runs the browse query. Random ordering is left to the caller; the rows
// come back newest first in that case.
func (r *PhotographerRepository) List(ctx context.Context, f models.PhotographerFilter) ([]models.Photographer, error) {
	var w whereBuilder
	if f.Category != "" {
		w.add(`EXISTS (SELECT 1 FROM categories c WHERE c.photographer_id = p.id AND lower(c.name) = lower(?))`, f.Category)
	}
	if f.MinRating > 0 {
		w.add(`p.rating >= ?`, f.MinRating)
	}
	if f.Location != "" {
		w.add(`p.location ILIKE '%' || ? || '%'`, f.Location)
	}

	var order string
	switch f.Sort {
	case models.SortRateAsc:
		order = "p.hourly_rate ASC, p.rating DESC"
	case models.SortRateDesc:
		order = "p.hourly_rate DESC, p.rating DESC"
	case models.SortNewest, models.SortRandom:
		order = "p.created_at DESC"
	default:
		order = "p.rating DESC, p.created_at DESC"
	}

	query := `SELECT ` + photographerColumns + ` FROM photographers p` + w.sql() +
		` ORDER BY ` + order
	query += fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(f.Limit), w.arg(f.Offset))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Photographer
	for rows.Next() {
		p, err := scanPhotographer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// UpdateProfile applies the non-nil fields of upd.
func (r *PhotographerRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.Photographer, error) {
	query := `
		UPDATE photographers p SET
			name = COALESCE($2, p.name),
			bio = COALESCE($3, p.bio),
			location = COALESCE($4, p.location),
			hourly_rate = COALESCE($5, p.hourly_rate),
			updated_at = now()
		WHERE p.id = $1
		RETURNING ` + photographerColumns
	p, err := scanPhotographer(r.pool.QueryRow(ctx, query, id, upd.Name, upd.Bio, upd.Location, upd.HourlyRate))
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PhotographerRepository) SetProfileImage(ctx context.Context, id uuid.UUID, url string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE photographers SET profile_image_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LegacyExistsByEmail looks for the user in the old "Photographers" table.
// Databases created after the schema change have no such table; that reads as false.
func (r *PhotographerRepository) LegacyExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM "Photographers" WHERE lower("Email") = lower($1))`, email).Scan(&exists)
	if err != nil {
		if isUndefinedTable(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PhotographerRepository) LegacyExists(ctx context.Context, legacyID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM "Photographers" WHERE "id" = $1)`, legacyID).Scan(&exists)
	if err != nil {
		if isUndefinedTable(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}
