package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/soundwave/internal/domain"
)

// SongRepository encapsulates track persistence.
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	UpdateMetadata(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id int64) error
	GetByIDForArtist(ctx context.Context, id, artistID int64) (*domain.Song, error)
	ListAll(ctx context.Context) ([]domain.Song, error)
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Song, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Song, error)
}

type songRepository struct {
	pool *pgxpool.Pool
}

// NewSongRepository returns a Postgres-backed implementation.
func NewSongRepository(pool *pgxpool.Pool) SongRepository {
	return &songRepository{pool: pool}
}

func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	const query = `
        INSERT INTO songs (title, artist_id, genre, audio_url, cover_image)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		song.Title,
		song.ArtistID,
		song.Genre,
		song.AudioURL,
		song.CoverImage,
	).Scan(&song.ID, &song.CreatedAt)
}

func (r *songRepository) UpdateMetadata(ctx context.Context, song *domain.Song) error {
	const query = `
        UPDATE songs SET title=$1, genre=$2, cover_image=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		song.Title,
		song.Genre,
		song.CoverImage,
		song.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *songRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM songs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *songRepository) GetByIDForArtist(ctx context.Context, id, artistID int64) (*domain.Song, error) {
	const query = `
        SELECT id, title, artist_id, genre, audio_url, cover_image, created_at
        FROM songs WHERE id=$1 AND artist_id=$2`

	var song domain.Song
	if err := r.pool.QueryRow(ctx, query, id, artistID).Scan(
		&song.ID,
		&song.Title,
		&song.ArtistID,
		&song.Genre,
		&song.AudioURL,
		&song.CoverImage,
		&song.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &song, nil
}

const listSongsQuery = `
        SELECT s.id, s.title, s.artist_id, s.genre, s.audio_url, s.cover_image, s.created_at,
               u.name AS artist_name
        FROM songs s
        JOIN artists a ON s.artist_id = a.id
        JOIN users u ON a.user_id = u.id`

func (r *songRepository) ListAll(ctx context.Context) ([]domain.Song, error) {
	rows, err := r.pool.Query(ctx, listSongsQuery+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSongs(rows)
}

func (r *songRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Song, error) {
	rows, err := r.pool.Query(ctx, listSongsQuery+` WHERE s.artist_id=$1 ORDER BY s.created_at DESC`, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSongs(rows)
}

func (r *songRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Song, error) {
	if len(ids) == 0 {
		return []domain.Song{}, nil
	}
	rows, err := r.pool.Query(ctx, listSongsQuery+` WHERE s.id = ANY($1) ORDER BY s.created_at DESC`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSongs(rows)
}

func scanSongs(rows pgx.Rows) ([]domain.Song, error) {
	songs := make([]domain.Song, 0)
	for rows.Next() {
		var song domain.Song
		if err := rows.Scan(
			&song.ID,
			&song.Title,
			&song.ArtistID,
			&song.Genre,
			&song.AudioURL,
			&song.CoverImage,
			&song.CreatedAt,
			&song.ArtistName,
		); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}
