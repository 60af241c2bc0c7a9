package domain

import "time"

// Artist is the companion profile record for users with the artist role,
// keyed 1:1 to the owning user.
type Artist struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}
