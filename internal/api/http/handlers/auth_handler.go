package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/soundwave/internal/api/dto"
	"github.com/spec-kit/soundwave/internal/auth"
	"github.com/spec-kit/soundwave/internal/service"
)

// AuthHandler exposes login, signup and logout.
type AuthHandler struct {
	auth    *service.AuthService
	session *auth.SessionCookie
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, session *auth.SessionCookie) *AuthHandler {
	return &AuthHandler{auth: authService, session: session}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Email and password are required")
	}

	user, token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.session.Attach(c, token)
	return c.JSON(fiber.Map{
		"user": dto.NewUserResponse(user, false),
	})
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Name, email, and password are required")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Name, email, and password are required")
	}

	user, err := h.auth.Signup(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"user": dto.NewUserResponse(user, true),
	})
}

// Logout handles POST /api/auth/logout. The token is stateless; logout only
// clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.session.Clear(c)
	return c.JSON(fiber.Map{"success": true})
}
