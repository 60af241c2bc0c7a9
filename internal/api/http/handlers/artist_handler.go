package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/soundwave/internal/api/dto"
	"github.com/spec-kit/soundwave/internal/auth"
	"github.com/spec-kit/soundwave/internal/service"
	apperrors "github.com/spec-kit/soundwave/pkg/util"
)

// ArtistHandler exposes the artist-only track endpoints. Identity is always
// re-derived from the forwarded email, never from request parameters.
type ArtistHandler struct {
	uploads *service.UploadService
}

// NewArtistHandler constructs handler.
func NewArtistHandler(uploads *service.UploadService) *ArtistHandler {
	return &ArtistHandler{uploads: uploads}
}

// ListTracks handles GET /api/artist.
func (h *ArtistHandler) ListTracks(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	songs, err := h.uploads.ListTracks(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSongListResponse(songs))
}

// Upload handles POST /api/artist/upload (multipart form).
func (h *ArtistHandler) Upload(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	genre := c.FormValue("genre")
	if title == "" || genre == "" {
		return fiber.NewError(http.StatusBadRequest, "Missing required fields")
	}

	coverHeader, coverErr := c.FormFile("coverImage")
	audioHeader, audioErr := c.FormFile("audioFile")
	if coverErr != nil || audioErr != nil {
		return fiber.NewError(http.StatusBadRequest, "Missing cover image or audio file")
	}

	cover, err := openFormFile(coverHeader)
	if err != nil {
		return err
	}
	defer cover.Close()

	audio, err := openFormFile(audioHeader)
	if err != nil {
		return err
	}
	defer audio.Close()

	song, err := h.uploads.UploadTrack(c.UserContext(), email, title, genre, cover, audio)
	if err != nil {
		return err
	}

	return c.JSON(dto.UploadResponse{
		Message:       "Upload successful",
		SongID:        song.ID,
		AudioURL:      song.AudioURL,
		CoverImageURL: song.CoverImage,
	})
}

// Update handles PUT /api/artist/songs/:id.
func (h *ArtistHandler) Update(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	songID, err := songIDParam(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	genre := c.FormValue("genre")
	if title == "" || genre == "" {
		return fiber.NewError(http.StatusBadRequest, "Title and genre are required")
	}

	song, err := h.uploads.UpdateTrack(c.UserContext(), email, songID, title, genre)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSongResponse(*song))
}

// Delete handles DELETE /api/artist/songs/:id.
func (h *ArtistHandler) Delete(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	songID, err := songIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uploads.DeleteTrack(c.UserContext(), email, songID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Song deleted successfully"})
}

func callerEmail(c *fiber.Ctx) (string, error) {
	identity, ok := auth.IdentityFromRequest(c)
	if !ok {
		return "", apperrors.NewUnauthorized("Unauthorized")
	}
	return identity.Email, nil
}

func songIDParam(c *fiber.Ctx) (int64, error) {
	songID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "Invalid song ID")
	}
	return songID, nil
}

func openFormFile(header *multipart.FileHeader) (multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return file, nil
}
