package domain

import "time"

// Song is an uploaded track. AudioURL and CoverImage point at the external
// media host; the row owns only the metadata.
type Song struct {
	ID         int64
	Title      string
	ArtistID   int64
	Genre      string
	AudioURL   string
	CoverImage string
	CreatedAt  time.Time

	// ArtistName is populated by listing queries that join through users.
	ArtistName string
}

// Favorites is the set of song ids a user has favorited.
type Favorites struct {
	UserID    int64
	SongIDs   []int64
	UpdatedAt time.Time
}
