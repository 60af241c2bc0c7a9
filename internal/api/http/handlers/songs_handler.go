package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/soundwave/internal/api/dto"
	"github.com/spec-kit/soundwave/internal/auth"
	"github.com/spec-kit/soundwave/internal/service"
	apperrors "github.com/spec-kit/soundwave/pkg/util"
)

// SongsHandler serves the public catalog and per-user favorites.
type SongsHandler struct {
	catalog *service.CatalogService
}

// NewSongsHandler constructs handler.
func NewSongsHandler(catalog *service.CatalogService) *SongsHandler {
	return &SongsHandler{catalog: catalog}
}

// ListSongs handles GET /api/songs.
func (h *SongsHandler) ListSongs(c *fiber.Ctx) error {
	songs, err := h.catalog.ListSongs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSongListResponse(songs))
}

// ListFavourites handles GET /api/dashboard/favourites.
func (h *SongsHandler) ListFavourites(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	songs, err := h.catalog.ListFavorites(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSongListResponse(songs))
}

// ToggleFavourite handles POST /api/dashboard/favourites.
func (h *SongsHandler) ToggleFavourite(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil || req.SongID == 0 {
		return fiber.NewError(http.StatusBadRequest, "songId is required")
	}

	action, songIDs, err := h.catalog.ToggleFavorite(c.UserContext(), userID, req.SongID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FavoriteResponse{Action: string(action), SongIDs: songIDs})
}

// callerID re-derives the caller identity from the forwarded headers set by
// the gatekeeper.
func callerID(c *fiber.Ctx) (int64, error) {
	identity, ok := auth.IdentityFromRequest(c)
	if !ok {
		return 0, apperrors.NewUnauthorized("Unauthorized")
	}
	userID, err := strconv.ParseInt(identity.UserID, 10, 64)
	if err != nil {
		return 0, apperrors.NewUnauthorized("Unauthorized")
	}
	return userID, nil
}
