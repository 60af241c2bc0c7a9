package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/soundwave/internal/domain"
	"github.com/spec-kit/soundwave/internal/events"
	"github.com/spec-kit/soundwave/internal/media"
	"github.com/spec-kit/soundwave/internal/repository"
)

// UploadService handles artist-owned track mutations: upload, metadata
// update and delete. Ownership is always checked against the artist profile
// resolved from the caller's verified email.
type UploadService struct {
	artists    repository.ArtistRepository
	songs      repository.SongRepository
	uploader   media.Uploader
	catalog    *CatalogService
	dispatcher events.Dispatcher
}

// NewUploadService builds the service.
func NewUploadService(artists repository.ArtistRepository, songs repository.SongRepository, uploader media.Uploader, catalog *CatalogService, dispatcher events.Dispatcher) *UploadService {
	return &UploadService{
		artists:    artists,
		songs:      songs,
		uploader:   uploader,
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

// ArtistByEmail resolves the caller's artist profile.
func (s *UploadService) ArtistByEmail(ctx context.Context, email string) (*domain.Artist, error) {
	return s.artists.GetByEmail(ctx, email)
}

// UploadTrack stores both blobs on the media host concurrently, then inserts
// the song row with the returned URLs.
func (s *UploadService) UploadTrack(ctx context.Context, email, title, genre string, cover, audio io.Reader) (*domain.Song, error) {
	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		coverAsset  *media.Asset
		audioAsset  *media.Asset
		coverErr    error
		audioErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		coverAsset, coverErr = s.uploader.UploadImage(ctx, cover)
	}()
	go func() {
		defer wg.Done()
		audioAsset, audioErr = s.uploader.UploadAudio(ctx, audio)
	}()
	wg.Wait()

	if coverErr != nil {
		return nil, coverErr
	}
	if audioErr != nil {
		return nil, audioErr
	}

	song := &domain.Song{
		Title:      title,
		ArtistID:   artist.ID,
		Genre:      genre,
		AudioURL:   audioAsset.URL,
		CoverImage: coverAsset.URL,
	}
	if err := s.songs.Create(ctx, song); err != nil {
		return nil, err
	}

	s.catalog.InvalidateCatalog(ctx)
	s.publish(ctx, events.EventTrackUploaded, song)
	return song, nil
}

// ListTracks returns the caller's own tracks, newest first.
func (s *UploadService) ListTracks(ctx context.Context, email string) ([]domain.Song, error) {
	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.songs.ListByArtist(ctx, artist.ID)
}

// UpdateTrack changes title and genre of a track the caller owns.
func (s *UploadService) UpdateTrack(ctx context.Context, email string, songID int64, title, genre string) (*domain.Song, error) {
	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	song, err := s.songs.GetByIDForArtist(ctx, songID, artist.ID)
	if err != nil {
		return nil, err
	}

	song.Title = title
	song.Genre = genre
	if err := s.songs.UpdateMetadata(ctx, song); err != nil {
		return nil, err
	}

	s.catalog.InvalidateCatalog(ctx)
	s.publish(ctx, events.EventTrackUpdated, song)
	return song, nil
}

// DeleteTrack removes a track the caller owns.
func (s *UploadService) DeleteTrack(ctx context.Context, email string, songID int64) error {
	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	song, err := s.songs.GetByIDForArtist(ctx, songID, artist.ID)
	if err != nil {
		return err
	}

	if err := s.songs.Delete(ctx, song.ID); err != nil {
		return err
	}

	s.catalog.InvalidateCatalog(ctx)
	s.publish(ctx, events.EventTrackDeleted, song)
	return nil
}

func (s *UploadService) publish(ctx context.Context, eventType events.EventType, song *domain.Song) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.TrackPayload{
			SongID:   song.ID,
			ArtistID: song.ArtistID,
			Title:    song.Title,
			Genre:    song.Genre,
		},
	})
}
