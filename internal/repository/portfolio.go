package repository

import (
	"context"
	"fmt"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const portfolioColumns = `i.id, i.photographer_id, i.url, i.storage_key, i.title, i.description, i.created_at`

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

func scanPortfolioImage(row pgx.Row) (*models.PortfolioImage, error) {
	var img models.PortfolioImage
	err := row.Scan(&img.ID, &img.PhotographerID, &img.URL, &img.StorageKey, &img.Title, &img.Description, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, img *models.PortfolioImage) error {
	query := `INSERT INTO portfolio_images (photographer_id, url, storage_key, title, description)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query, img.PhotographerID, img.URL, img.StorageKey, img.Title, img.Description).
		Scan(&img.ID, &img.CreatedAt)
	return mapErr(err)
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioImage, error) {
	img, err := scanPortfolioImage(r.pool.QueryRow(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio_images i WHERE i.id = $1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return img, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, id uuid.UUID, upd models.PortfolioUpdate) (*models.PortfolioImage, error) {
	query := `UPDATE portfolio_images i SET
			title = COALESCE($2, i.title),
			description = COALESCE($3, i.description)
		WHERE i.id = $1
		RETURNING ` + portfolioColumns
	img, err := scanPortfolioImage(r.pool.QueryRow(ctx, query, id, upd.Title, upd.Description))
	if err != nil {
		return nil, mapErr(err)
	}
	return img, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolio_images WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns portfolio images newest first. Random ordering is applied by the caller.
func (r *PortfolioRepository) List(ctx context.Context, f models.PortfolioFilter) ([]models.PortfolioImage, error) {
	var w whereBuilder
	if f.PhotographerID != nil {
		w.add(`i.photographer_id = ?`, *f.PhotographerID)
	}
	if f.Category != "" {
		w.add(`EXISTS (SELECT 1 FROM categories c WHERE c.photographer_id = i.photographer_id AND lower(c.name) = lower(?))`, f.Category)
	}

	query := `SELECT ` + portfolioColumns + ` FROM portfolio_images i` + w.sql() + ` ORDER BY i.created_at DESC`
	query += fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(f.Limit), w.arg(f.Offset))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PortfolioImage
	for rows.Next() {
		img, err := scanPortfolioImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *img)
	}
	return out, rows.Err()
}
