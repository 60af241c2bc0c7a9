package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/soundwave/internal/domain"
)

// MockSongRepository is a mock implementation of repository.SongRepository.
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) UpdateMetadata(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) GetByIDForArtist(ctx context.Context, id, artistID int64) (*domain.Song, error) {
	args := m.Called(ctx, id, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) ListAll(ctx context.Context) ([]domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Song, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Song, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Get(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockFavoriteRepository) Put(ctx context.Context, userID int64, songIDs []int64) error {
	args := m.Called(ctx, userID, songIDs)
	return args.Error(0)
}

func newCatalog(songs *MockSongRepository, favorites *MockFavoriteRepository) *CatalogService {
	return NewCatalogService(songs, favorites, nil, time.Minute, zap.NewNop())
}

func TestToggleFavoriteAdds(t *testing.T) {
	songs := new(MockSongRepository)
	favorites := new(MockFavoriteRepository)
	favorites.On("Get", mock.Anything, int64(7)).Return([]int64{1, 2}, nil)
	favorites.On("Put", mock.Anything, int64(7), []int64{1, 2, 9}).Return(nil)

	action, ids, err := newCatalog(songs, favorites).ToggleFavorite(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, action)
	assert.Equal(t, []int64{1, 2, 9}, ids)
	favorites.AssertExpectations(t)
}

func TestToggleFavoriteRemoves(t *testing.T) {
	songs := new(MockSongRepository)
	favorites := new(MockFavoriteRepository)
	favorites.On("Get", mock.Anything, int64(7)).Return([]int64{1, 9, 2}, nil)
	favorites.On("Put", mock.Anything, int64(7), []int64{1, 2}).Return(nil)

	action, ids, err := newCatalog(songs, favorites).ToggleFavorite(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Equal(t, FavoriteRemoved, action)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestToggleFavoriteFirstEver(t *testing.T) {
	songs := new(MockSongRepository)
	favorites := new(MockFavoriteRepository)
	favorites.On("Get", mock.Anything, int64(7)).Return([]int64{}, nil)
	favorites.On("Put", mock.Anything, int64(7), []int64{9}).Return(nil)

	action, ids, err := newCatalog(songs, favorites).ToggleFavorite(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, action)
	assert.Equal(t, []int64{9}, ids)
}

func TestListFavoritesResolvesSongs(t *testing.T) {
	songs := new(MockSongRepository)
	favorites := new(MockFavoriteRepository)
	favorites.On("Get", mock.Anything, int64(7)).Return([]int64{3}, nil)
	songs.On("ListByIDs", mock.Anything, []int64{3}).Return([]domain.Song{{ID: 3, Title: "Track"}}, nil)

	out, err := newCatalog(songs, favorites).ListFavorites(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}

func TestListSongsWithoutCacheHitsStore(t *testing.T) {
	songs := new(MockSongRepository)
	favorites := new(MockFavoriteRepository)
	songs.On("ListAll", mock.Anything).Return([]domain.Song{{ID: 1}}, nil)

	out, err := newCatalog(songs, favorites).ListSongs(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
	songs.AssertExpectations(t)
}
