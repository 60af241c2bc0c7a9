package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/soundwave/internal/domain"
)

// ArtistRepository resolves artist profiles.
type ArtistRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Artist, error)
	GetByEmail(ctx context.Context, email string) (*domain.Artist, error)
}

type artistRepository struct {
	pool *pgxpool.Pool
}

// NewArtistRepository returns a Postgres-backed implementation.
func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &artistRepository{pool: pool}
}

func (r *artistRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Artist, error) {
	const query = `
        SELECT id, user_id, created_at
        FROM artists WHERE user_id=$1`

	var artist domain.Artist
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&artist.ID,
		&artist.UserID,
		&artist.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) GetByEmail(ctx context.Context, email string) (*domain.Artist, error) {
	const query = `
        SELECT a.id, a.user_id, a.created_at
        FROM artists a
        JOIN users u ON a.user_id = u.id
        WHERE u.email=$1`

	var artist domain.Artist
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&artist.ID,
		&artist.UserID,
		&artist.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &artist, nil
}
