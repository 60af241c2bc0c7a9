package dto

import (
	"time"

	"github.com/spec-kit/soundwave/internal/domain"
)

// SongResponse is the wire shape of a track.
type SongResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Genre      string    `json:"genre"`
	AudioURL   string    `json:"audio_url"`
	CoverImage string    `json:"cover_image"`
	ArtistName string    `json:"artist_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewSongResponse maps a domain song.
func NewSongResponse(song domain.Song) SongResponse {
	return SongResponse{
		ID:         song.ID,
		Title:      song.Title,
		Genre:      song.Genre,
		AudioURL:   song.AudioURL,
		CoverImage: song.CoverImage,
		ArtistName: song.ArtistName,
		CreatedAt:  song.CreatedAt,
	}
}

// NewSongListResponse maps a slice, always returning a non-nil list.
func NewSongListResponse(songs []domain.Song) []SongResponse {
	out := make([]SongResponse, 0, len(songs))
	for _, song := range songs {
		out = append(out, NewSongResponse(song))
	}
	return out
}

// FavoriteRequest toggles a song in the caller's favorites.
type FavoriteRequest struct {
	SongID int64 `json:"songId"`
}

// FavoriteResponse reports the toggle outcome.
type FavoriteResponse struct {
	Action  string  `json:"action"`
	SongIDs []int64 `json:"songIds"`
}

// UploadResponse reports a stored track.
type UploadResponse struct {
	Message       string `json:"message"`
	SongID        int64  `json:"songId"`
	AudioURL      string `json:"audioUrl"`
	CoverImageURL string `json:"coverImageUrl"`
}
