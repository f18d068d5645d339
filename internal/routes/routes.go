package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savorly/mealplan-backend/internal/config"
	"github.com/savorly/mealplan-backend/internal/handlers"
	"github.com/savorly/mealplan-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	prefHandler *handlers.PreferenceHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Static assets (landing page etc.)
	app.Static("/", cfg.StaticDir)

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth — public; refresh and logout operate on the cookie alone
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Users — private
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Patch("/", userHandler.UpdateUser)
	users.Delete("/", userHandler.DeleteUser)

	// Preferences — private
	pref := api.Group("/preference", middleware.JWTProtected(cfg))
	pref.Get("/:userId", prefHandler.GetPreference)
	pref.Post("/", prefHandler.CreatePreference)
	pref.Patch("/", prefHandler.UpdatePreference)

	// Catch-all 404, negotiated on the Accept header
	app.Use(handlers.NotFound(cfg.ViewsDir))
}
