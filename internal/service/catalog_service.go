package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/soundwave/internal/domain"
	"github.com/spec-kit/soundwave/internal/repository"
)

const catalogCacheKey = "soundwave:catalog"

// FavoriteAction reports what a toggle did.
type FavoriteAction string

const (
	FavoriteAdded   FavoriteAction = "added"
	FavoriteRemoved FavoriteAction = "removed"
)

// CatalogService serves song listings and favorites. The public listing is
// cached in Redis and invalidated on track mutations.
type CatalogService struct {
	songs     repository.SongRepository
	favorites repository.FavoriteRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewCatalogService builds the service. cache may be nil, in which case
// listings always hit the database.
func NewCatalogService(songs repository.SongRepository, favorites repository.FavoriteRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		songs:     songs,
		favorites: favorites,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// ListSongs returns the whole catalog, newest first.
func (s *CatalogService) ListSongs(ctx context.Context) ([]domain.Song, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var songs []domain.Song
			if err := json.Unmarshal(cached, &songs); err == nil {
				return songs, nil
			}
		}
	}

	songs, err := s.songs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(songs); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return songs, nil
}

// InvalidateCatalog drops the cached listing after a track mutation.
func (s *CatalogService) InvalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

// ToggleFavorite adds the song to the user's favorites, or removes it when
// already present.
func (s *CatalogService) ToggleFavorite(ctx context.Context, userID, songID int64) (FavoriteAction, []int64, error) {
	current, err := s.favorites.Get(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	action := FavoriteAdded
	updated := make([]int64, 0, len(current)+1)
	for _, id := range current {
		if id == songID {
			action = FavoriteRemoved
			continue
		}
		updated = append(updated, id)
	}
	if action == FavoriteAdded {
		updated = append(updated, songID)
	}

	if err := s.favorites.Put(ctx, userID, updated); err != nil {
		return "", nil, err
	}
	return action, updated, nil
}

// ListFavorites returns the full song rows for the user's favorite ids.
func (s *CatalogService) ListFavorites(ctx context.Context, userID int64) ([]domain.Song, error) {
	ids, err := s.favorites.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.songs.ListByIDs(ctx, ids)
}
