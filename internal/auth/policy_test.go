package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/soundwave/internal/domain"
)

func TestDefaultPolicyClassification(t *testing.T) {
	table := DefaultPolicyTable()

	cases := []struct {
		path       string
		visibility Visibility
		isAPI      bool
	}{
		{"/login", VisibilityPublic, false},
		{"/signup", VisibilityPublic, false},
		{"/dashboard", VisibilityListener, false},
		{"/music", VisibilityListener, false},
		{"/artist/upload", VisibilityArtist, false},
		{"/artist/profile", VisibilityArtist, false},
		{"/artist/dashboard", VisibilityArtist, false},
		{"/api/artist", VisibilityAPI, true},
		{"/api/artist/upload", VisibilityAPI, true},
		{"/api/artist/songs/5", VisibilityAPI, true},
		{"/api/dashboard/favourites", VisibilityAPI, true},
	}

	for _, tc := range cases {
		rule, isAPI, matched := table.Lookup(tc.path)
		require.True(t, matched, "path %s should match", tc.path)
		assert.Equal(t, tc.visibility, rule.Visibility, "path %s", tc.path)
		assert.Equal(t, tc.isAPI, isAPI, "path %s", tc.path)
	}
}

func TestUnmatchedPathsPassThrough(t *testing.T) {
	table := DefaultPolicyTable()

	for _, path := range []string{"/", "/api/songs", "/api/auth/login", "/about", "/artistic"} {
		_, _, matched := table.Lookup(path)
		assert.False(t, matched, "path %s should be unrestricted", path)
	}
}

func TestRequiredRole(t *testing.T) {
	table := DefaultPolicyTable()

	rule, _, _ := table.Lookup("/artist/upload")
	assert.Equal(t, domain.RoleArtist, rule.RequiredRole())

	rule, _, _ = table.Lookup("/dashboard")
	assert.Equal(t, domain.RoleListener, rule.RequiredRole())

	rule, _, _ = table.Lookup("/api/artist/upload")
	assert.Equal(t, domain.RoleArtist, rule.RequiredRole())

	// any authenticated caller may use favorites
	rule, _, _ = table.Lookup("/api/dashboard/favourites")
	assert.Equal(t, domain.Role(""), rule.RequiredRole())
}

func TestHomeFor(t *testing.T) {
	table := DefaultPolicyTable()

	assert.Equal(t, "/artist/dashboard", table.HomeFor(domain.RoleArtist))
	assert.Equal(t, "/dashboard", table.HomeFor(domain.RoleListener))
}

func TestRulePrefixMatching(t *testing.T) {
	rule := Rule{Pattern: "/api/artist/*", Visibility: VisibilityAPI}

	assert.True(t, rule.Matches("/api/artist"))
	assert.True(t, rule.Matches("/api/artist/upload"))
	assert.True(t, rule.Matches("/api/artist/songs/12"))
	assert.False(t, rule.Matches("/api/artists"))
	assert.False(t, rule.Matches("/api/art"))
}
