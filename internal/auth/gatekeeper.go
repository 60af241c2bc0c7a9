package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/soundwave/internal/domain"
)

// Forwarded identity headers set by the gatekeeper on authorized
// pass-through. Inbound values are stripped first, so downstream handlers
// only ever see what the gatekeeper derived from a verified token.
const (
	HeaderUserID    = "x-user-id"
	HeaderUserRole  = "x-user-role"
	HeaderUserEmail = "x-user-email"
)

// Gatekeeper intercepts every request, consults the policy table and decides
// pass, redirect, 401 or cookie-clear. It holds no mutable state and is safe
// for concurrent use.
type Gatekeeper struct {
	tokens  *TokenManager
	session *SessionCookie
	policy  *PolicyTable
	logger  *zap.Logger
}

// NewGatekeeper constructs the interceptor.
func NewGatekeeper(tokens *TokenManager, session *SessionCookie, policy *PolicyTable, logger *zap.Logger) *Gatekeeper {
	return &Gatekeeper{tokens: tokens, session: session, policy: policy, logger: logger}
}

// Handle classifies and authorizes the request. Token failures are always
// downgraded to an auth-state decision, never surfaced as 5xx.
func (g *Gatekeeper) Handle(c *fiber.Ctx) error {
	stripIdentityHeaders(c)

	path := c.Path()
	rule, isAPI, matched := g.policy.Lookup(path)
	if !matched {
		return c.Next()
	}

	// CORS preflight never carries credentials worth checking.
	if c.Method() == fiber.MethodOptions {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		return c.SendStatus(http.StatusNoContent)
	}

	token := g.session.Extract(c)
	if token == "" {
		switch {
		case rule.Visibility == VisibilityPublic:
			return c.Next()
		case isAPI:
			return unauthorized(c)
		default:
			return c.Redirect(g.policy.LoginPath(), http.StatusSeeOther)
		}
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Debug("rejected session token", zap.String("path", path), zap.Error(err))
		switch {
		case rule.Visibility == VisibilityPublic:
			g.session.Clear(c)
			return c.Next()
		case isAPI:
			// API clients may retry with a fresh token out-of-band.
			return unauthorized(c)
		default:
			g.session.Clear(c)
			return c.Redirect(g.policy.LoginPath(), http.StatusSeeOther)
		}
	}

	// An authenticated caller has no business on login or signup.
	if rule.Visibility == VisibilityPublic {
		return c.Redirect(g.policy.HomeFor(claims.Role), http.StatusSeeOther)
	}

	if required := rule.RequiredRole(); required != "" && claims.Role != required {
		if isAPI {
			return unauthorized(c)
		}
		// Role mismatch on a page silently lands on the caller's own home.
		return c.Redirect(g.policy.HomeFor(claims.Role), http.StatusSeeOther)
	}

	injectIdentity(c, claims)
	return c.Next()
}

// Identity is the caller identity handlers re-derive from forwarded headers.
type Identity struct {
	UserID string
	Role   domain.Role
	Email  string
}

// IdentityFromRequest reads the forwarded identity headers. ok is false when
// the gatekeeper did not authorize the request.
func IdentityFromRequest(c *fiber.Ctx) (Identity, bool) {
	id := Identity{
		UserID: c.Get(HeaderUserID),
		Role:   domain.Role(c.Get(HeaderUserRole)),
		Email:  c.Get(HeaderUserEmail),
	}
	if id.UserID == "" || id.Email == "" {
		return Identity{}, false
	}
	return id, true
}

func injectIdentity(c *fiber.Ctx, claims *Claims) {
	c.Request().Header.Set(HeaderUserID, claims.Subject)
	c.Request().Header.Set(HeaderUserRole, string(claims.Role))
	c.Request().Header.Set(HeaderUserEmail, claims.Email)
}

func stripIdentityHeaders(c *fiber.Ctx) {
	c.Request().Header.Del(HeaderUserID)
	c.Request().Header.Del(HeaderUserRole)
	c.Request().Header.Del(HeaderUserEmail)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
