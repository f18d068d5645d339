package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savorly/mealplan-backend/internal/config"
	"github.com/savorly/mealplan-backend/internal/dto"
	"github.com/savorly/mealplan-backend/internal/services"
)

// RefreshCookieName is the cookie carrying the refresh token. The cookie
// is HTTP-only and cross-site because the frontend is served from a
// different origin.
const RefreshCookieName = "refreshToken"

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func setRefreshCookie(c *fiber.Ctx, token string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	accessToken, refreshToken, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "All fields are required",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	// The refresh token travels only in the cookie, never in the body.
	setRefreshCookie(c, refreshToken, h.cfg.RefreshTokenExpiry)
	return c.JSON(dto.AccessTokenResponse{AccessToken: accessToken})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(RefreshCookieName)
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	accessToken, err := h.authService.Refresh(refreshToken)
	if err != nil {
		// 403 means "had a token, but it's no good"; 401 means the
		// identity behind the token no longer exists.
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AccessTokenResponse{AccessToken: accessToken})
}

// Logout clears the refresh cookie. Tokens are stateless, so there is
// nothing to invalidate server-side; without a cookie this is a no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if c.Cookies(RefreshCookieName) == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}

	clearRefreshCookie(c)
	return c.JSON(dto.MessageResponse{Message: "Cookie cleared"})
}
