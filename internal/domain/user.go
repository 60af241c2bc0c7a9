package domain

import "time"

// Role distinguishes listeners from artists.
type Role string

const (
	RoleListener Role = "listener"
	RoleArtist   Role = "artist"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleListener || r == RoleArtist
}

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
