package events

import (
	"time"

	"github.com/spec-kit/soundwave/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTrackUploaded EventType = "track_uploaded"
	EventTrackUpdated  EventType = "track_updated"
	EventTrackDeleted  EventType = "track_deleted"
	EventUserSignedUp  EventType = "user_signed_up"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TrackPayload describes a track event.
type TrackPayload struct {
	SongID   int64  `json:"song_id"`
	ArtistID int64  `json:"artist_id"`
	Title    string `json:"title,omitempty"`
	Genre    string `json:"genre,omitempty"`
}

// UserSignedUpPayload describes a signup event.
type UserSignedUpPayload struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}
