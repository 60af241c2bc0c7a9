package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the single session cookie.
const CookieName = "authToken"

// SessionCookie binds serialized tokens to the authToken cookie.
type SessionCookie struct {
	maxAge time.Duration
	secure bool
}

// NewSessionCookie builds the cookie binding. secure enables the Secure
// attribute and should follow the production flag.
func NewSessionCookie(maxAge time.Duration, secure bool) *SessionCookie {
	if maxAge <= 0 {
		maxAge = 168 * time.Hour
	}
	return &SessionCookie{maxAge: maxAge, secure: secure}
}

// Attach writes the session cookie onto the outgoing response.
func (s *SessionCookie) Attach(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		Expires:  time.Now().Add(s.maxAge),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// Extract reads the serialized token from the request. Returns "" when the
// cookie is absent; it never fails.
func (s *SessionCookie) Extract(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// Clear overwrites the cookie with an empty, already-expired value carrying
// an explicit Max-Age=0, so the browser drops it. fasthttp omits the Max-Age
// attribute when it is zero, so the Set-Cookie line is written raw.
func (s *SessionCookie) Clear(c *fiber.Ctx) {
	attrs := CookieName + "=; Path=/; Expires=Thu, 01 Jan 1970 00:00:00 GMT; Max-Age=0; HttpOnly; SameSite=Strict"
	if s.secure {
		attrs += "; Secure"
	}
	c.Response().Header.Add(fiber.HeaderSetCookie, attrs)
}
