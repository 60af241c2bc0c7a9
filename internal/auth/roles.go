package auth

import (
	"strings"

	"github.com/spec-kit/soundwave/internal/domain"
)

// RoleAssigner decides the role for a new signup. It is injected into the
// auth service so the assignment policy can change without touching it.
type RoleAssigner func(email string) domain.Role

// DomainSuffixRoleAssigner assigns the artist role to emails ending with the
// given domain suffix and the listener role to everyone else.
func DomainSuffixRoleAssigner(artistDomain string) RoleAssigner {
	suffix := strings.ToLower(artistDomain)
	return func(email string) domain.Role {
		if suffix != "" && strings.HasSuffix(strings.ToLower(email), suffix) {
			return domain.RoleArtist
		}
		return domain.RoleListener
	}
}
