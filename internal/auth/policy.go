package auth

import (
	"strings"

	"github.com/spec-kit/soundwave/internal/domain"
)

// Visibility classifies what a path requires from the caller.
type Visibility string

const (
	// VisibilityPublic paths (login, signup) are reachable without a token;
	// authenticated callers get redirected to their role home instead.
	VisibilityPublic Visibility = "public"
	// VisibilityListener pages require a listener token.
	VisibilityListener Visibility = "listener-only"
	// VisibilityArtist pages require an artist token.
	VisibilityArtist Visibility = "artist-only"
	// VisibilityAPI endpoints fail with 401 instead of redirecting.
	VisibilityAPI Visibility = "protected-api"
)

// Rule maps a path pattern to its visibility class. A trailing "/*" makes
// the pattern a prefix match; otherwise matching is exact. API rules may
// additionally require a role.
type Rule struct {
	Pattern    string
	Visibility Visibility
	// Role is the required role for VisibilityAPI rules. Empty means any
	// authenticated caller.
	Role domain.Role
}

// Matches reports whether the rule covers the path.
func (r Rule) Matches(path string) bool {
	if prefix, ok := strings.CutSuffix(r.Pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

// RequiredRole returns the role the rule demands, or "" when any
// authenticated caller may pass.
func (r Rule) RequiredRole() domain.Role {
	switch r.Visibility {
	case VisibilityListener:
		return domain.RoleListener
	case VisibilityArtist:
		return domain.RoleArtist
	default:
		return r.Role
	}
}

// PolicyTable is the static, ordered access policy consulted by the
// gatekeeper. It is built once at startup and read concurrently without
// locking. Page rules and API rules are kept apart because the failure
// strategy differs: pages redirect, APIs answer 401.
type PolicyTable struct {
	pages        []Rule
	apis         []Rule
	listenerHome string
	artistHome   string
}

// NewPolicyTable builds a table from explicit rule sets.
func NewPolicyTable(pages, apis []Rule, listenerHome, artistHome string) *PolicyTable {
	return &PolicyTable{
		pages:        pages,
		apis:         apis,
		listenerHome: listenerHome,
		artistHome:   artistHome,
	}
}

// DefaultPolicyTable returns the application's route policy.
func DefaultPolicyTable() *PolicyTable {
	return NewPolicyTable(
		[]Rule{
			{Pattern: "/login", Visibility: VisibilityPublic},
			{Pattern: "/signup", Visibility: VisibilityPublic},
			{Pattern: "/dashboard", Visibility: VisibilityListener},
			{Pattern: "/music", Visibility: VisibilityListener},
			{Pattern: "/artist/upload", Visibility: VisibilityArtist},
			{Pattern: "/artist/profile", Visibility: VisibilityArtist},
			{Pattern: "/artist/dashboard", Visibility: VisibilityArtist},
		},
		[]Rule{
			{Pattern: "/api/artist/*", Visibility: VisibilityAPI, Role: domain.RoleArtist},
			{Pattern: "/api/dashboard/favourites", Visibility: VisibilityAPI},
		},
		"/dashboard",
		"/artist/dashboard",
	)
}

// Lookup resolves the path to its rule. The second return distinguishes API
// rules from page rules; the third is false for unmatched paths, which pass
// through unrestricted.
func (t *PolicyTable) Lookup(path string) (Rule, bool, bool) {
	for _, rule := range t.pages {
		if rule.Matches(path) {
			return rule, false, true
		}
	}
	for _, rule := range t.apis {
		if rule.Matches(path) {
			return rule, true, true
		}
	}
	return Rule{}, false, false
}

// HomeFor returns the landing page for a role.
func (t *PolicyTable) HomeFor(role domain.Role) string {
	if role == domain.RoleArtist {
		return t.artistHome
	}
	return t.listenerHome
}

// LoginPath is where unauthenticated page requests get redirected.
func (t *PolicyTable) LoginPath() string {
	return "/login"
}
