package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/savorly/mealplan-backend/internal/dto"
)

// NotFound returns the catch-all 404 handler. The representation is
// negotiated on the Accept header: an HTML page, a JSON body, or plain
// text.
func NotFound(viewsDir string) fiber.Handler {
	page := filepath.Join(viewsDir, "404.html")

	return func(c *fiber.Ctx) error {
		c.Status(fiber.StatusNotFound)

		switch c.Accepts("html", "json", "txt") {
		case "html":
			if _, err := os.Stat(page); err == nil {
				return c.SendFile(page)
			}
			return c.Type("txt").SendString("404 not found")
		case "json":
			return c.JSON(dto.MessageResponse{Message: "404 not found"})
		default:
			return c.Type("txt").SendString("404 not found")
		}
	}
}
