package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/soundwave/internal/api/http/handlers"
	"github.com/spec-kit/soundwave/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Songs      *handlers.SongsHandler
	Artist     *handlers.ArtistHandler
	Pages      *handlers.PagesHandler
	Gatekeeper *auth.Gatekeeper
}

// RegisterRoutes wires HTTP routes. The gatekeeper runs first on every
// request; authorization lives in its policy table, not in the routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gatekeeper.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	app.Get("/api/songs", cfg.Songs.ListSongs)
	app.Get("/api/dashboard/favourites", cfg.Songs.ListFavourites)
	app.Post("/api/dashboard/favourites", cfg.Songs.ToggleFavourite)

	app.Get("/api/artist", cfg.Artist.ListTracks)
	artistGroup := app.Group("/api/artist")
	artistGroup.Post("/upload", cfg.Artist.Upload)
	artistGroup.Put("/songs/:id", cfg.Artist.Update)
	artistGroup.Delete("/songs/:id", cfg.Artist.Delete)

	app.Get("/", cfg.Pages.Page("home"))
	app.Get("/login", cfg.Pages.Page("login"))
	app.Get("/signup", cfg.Pages.Page("signup"))
	app.Get("/dashboard", cfg.Pages.Page("dashboard"))
	app.Get("/music", cfg.Pages.Page("music"))
	app.Get("/artist/upload", cfg.Pages.Page("artist-upload"))
	app.Get("/artist/profile", cfg.Pages.Page("artist-profile"))
	app.Get("/artist/dashboard", cfg.Pages.Page("artist-dashboard"))
}
