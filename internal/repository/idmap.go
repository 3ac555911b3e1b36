package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IDMapRepository struct {
	pool *pgxpool.Pool
}

func NewIDMapRepository(pool *pgxpool.Pool) *IDMapRepository {
	return &IDMapRepository{pool: pool}
}

func (r *IDMapRepository) GetUUID(ctx context.Context, legacyID int64) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT uuid FROM id_map WHERE legacy_id = $1`, legacyID).Scan(&id)
	return id, mapErr(err)
}

func (r *IDMapRepository) GetLegacyID(ctx context.Context, id uuid.UUID) (int64, error) {
	var legacyID int64
	err := r.pool.QueryRow(ctx, `SELECT legacy_id FROM id_map WHERE uuid = $1`, id).Scan(&legacyID)
	return legacyID, mapErr(err)
}

// InsertIfAbsent stores legacyID -> id unless a mapping already exists, and
// returns whichever UUID ends up mapped.
func (r *IDMapRepository) InsertIfAbsent(ctx context.Context, legacyID int64, id uuid.UUID) (uuid.UUID, error) {
	query := `
		WITH ins AS (
			INSERT INTO id_map (legacy_id, uuid) VALUES ($1, $2)
			ON CONFLICT (legacy_id) DO NOTHING
			RETURNING uuid
		)
		SELECT uuid FROM ins
		UNION ALL
		SELECT uuid FROM id_map WHERE legacy_id = $1
		LIMIT 1`
	var mapped uuid.UUID
	err := r.pool.QueryRow(ctx, query, legacyID, id).Scan(&mapped)
	return mapped, mapErr(err)
}

// ListUnmapped returns legacy photographer ids that have no mapping yet.
// A database without the legacy table has nothing to map.
func (r *IDMapRepository) ListUnmapped(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lp."id" FROM "Photographers" lp
		LEFT JOIN id_map m ON m.legacy_id = lp."id"
		WHERE m.legacy_id IS NULL
		ORDER BY lp."id"`)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	return ids, nil
}
