package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoriteRepository stores the per-user favorite song id set.
type FavoriteRepository interface {
	// Get returns the stored song ids, or an empty slice when the user has
	// no favorites row yet.
	Get(ctx context.Context, userID int64) ([]int64, error)
	// Put upserts the full set for the user.
	Put(ctx context.Context, userID int64, songIDs []int64) error
}

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository returns a Postgres-backed implementation.
func NewFavoriteRepository(pool *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{pool: pool}
}

func (r *favoriteRepository) Get(ctx context.Context, userID int64) ([]int64, error) {
	const query = `SELECT song_ids FROM user_favorites WHERE user_id=$1`

	var ids []int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&ids); err != nil {
		if err == pgx.ErrNoRows {
			return []int64{}, nil
		}
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (r *favoriteRepository) Put(ctx context.Context, userID int64, songIDs []int64) error {
	const query = `
        INSERT INTO user_favorites (user_id, song_ids)
        VALUES ($1, $2)
        ON CONFLICT (user_id)
        DO UPDATE SET song_ids = EXCLUDED.song_ids, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, userID, songIDs)
	return err
}
