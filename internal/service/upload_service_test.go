package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/soundwave/internal/domain"
	"github.com/spec-kit/soundwave/internal/media"
)

// MockArtistRepository is a mock implementation of repository.ArtistRepository.
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Artist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByEmail(ctx context.Context, email string) (*domain.Artist, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

type fakeUploader struct{}

func (fakeUploader) UploadImage(ctx context.Context, r io.Reader) (*media.Asset, error) {
	_, _ = io.ReadAll(r)
	return &media.Asset{URL: "https://media.test/covers/x", PublicID: "covers/x"}, nil
}

func (fakeUploader) UploadAudio(ctx context.Context, r io.Reader) (*media.Asset, error) {
	_, _ = io.ReadAll(r)
	return &media.Asset{URL: "https://media.test/tracks/x", PublicID: "tracks/x"}, nil
}

func newUploadFixture(artists *MockArtistRepository, songs *MockSongRepository) *UploadService {
	catalog := NewCatalogService(songs, new(MockFavoriteRepository), nil, time.Minute, zap.NewNop())
	return NewUploadService(artists, songs, fakeUploader{}, catalog, nil)
}

func TestUploadTrackStoresBothAssets(t *testing.T) {
	artists := new(MockArtistRepository)
	songs := new(MockSongRepository)
	artists.On("GetByEmail", mock.Anything, "jane@artist.com").Return(&domain.Artist{ID: 5, UserID: 42}, nil)
	songs.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Song) bool {
		return s.ArtistID == 5 &&
			s.AudioURL == "https://media.test/tracks/x" &&
			s.CoverImage == "https://media.test/covers/x"
	})).Return(nil)

	svc := newUploadFixture(artists, songs)

	song, err := svc.UploadTrack(context.Background(), "jane@artist.com", "Song", "pop",
		strings.NewReader("cover-bytes"), strings.NewReader("audio-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Song", song.Title)
	songs.AssertExpectations(t)
}

func TestUpdateTrackChecksOwnership(t *testing.T) {
	artists := new(MockArtistRepository)
	songs := new(MockSongRepository)
	artists.On("GetByEmail", mock.Anything, "jane@artist.com").Return(&domain.Artist{ID: 5}, nil)
	songs.On("GetByIDForArtist", mock.Anything, int64(9), int64(5)).Return(nil, pgx.ErrNoRows)

	svc := newUploadFixture(artists, songs)

	_, err := svc.UpdateTrack(context.Background(), "jane@artist.com", 9, "New", "rock")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	songs.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything)
}

func TestDeleteTrackChecksOwnership(t *testing.T) {
	artists := new(MockArtistRepository)
	songs := new(MockSongRepository)
	artists.On("GetByEmail", mock.Anything, "jane@artist.com").Return(&domain.Artist{ID: 5}, nil)
	songs.On("GetByIDForArtist", mock.Anything, int64(9), int64(5)).Return(&domain.Song{ID: 9, ArtistID: 5}, nil)
	songs.On("Delete", mock.Anything, int64(9)).Return(nil)

	svc := newUploadFixture(artists, songs)

	require.NoError(t, svc.DeleteTrack(context.Background(), "jane@artist.com", 9))
	songs.AssertExpectations(t)
}
