package repository

import (
	"context"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, photographer_id, name, price::float8, description, created_at`

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.PhotographerID, &c.Name, &c.Price, &c.Description, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, photographerID uuid.UUID, in models.CategoryInput) (*models.Category, error) {
	query := `INSERT INTO categories (photographer_id, name, price, description) VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns
	c, err := scanCategory(r.pool.QueryRow(ctx, query, photographerID, in.Name, in.Price, in.Description))
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, in models.CategoryInput) (*models.Category, error) {
	query := `UPDATE categories SET name = $2, price = $3, description = $4 WHERE id = $1
		RETURNING ` + categoryColumns
	c, err := scanCategory(r.pool.QueryRow(ctx, query, id, in.Name, in.Price, in.Description))
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) ListByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE photographer_id = $1 ORDER BY name`, photographerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListNames returns the distinct category names, for filter menus.
func (r *CategoryRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT ON (lower(name)) name FROM categories ORDER BY lower(name), name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
