package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// PagesHandler serves the page routes the gatekeeper protects. Rendering is
// a client concern; these are static shells.
type PagesHandler struct {
	appName string
}

// NewPagesHandler constructs handler.
func NewPagesHandler(appName string) *PagesHandler {
	return &PagesHandler{appName: appName}
}

// Page returns a handler serving a named shell page.
func (h *PagesHandler) Page(title string) fiber.Handler {
	body := fmt.Sprintf("<!DOCTYPE html><html><head><title>%s | %s</title></head><body data-page=%q></body></html>", title, h.appName, title)
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(body)
	}
}
