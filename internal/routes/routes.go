package routes

import (
	"translation-backend/internal/handlers"
	"translation-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Translations *handlers.TranslationHandler
}

func Setup(app *fiber.App, h Handlers, authenticator middleware.Authenticator, loginLimiter *middleware.LoginLimiter) {
	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.Post("/register", h.Auth.Register)
		authGroup.Post("/login", loginLimiter.Handler(), h.Auth.Login)
	}

	// Translation routes
	api.Post("/translate", middleware.OptionalAuth(authenticator), h.Translations.Translate)
	api.Post("/save_correction", middleware.RequireAuth(authenticator), h.Translations.SaveCorrection)
	api.Get("/get_translations", middleware.RequireAuth(authenticator), h.Translations.GetTranslations)
	api.Get("/languages", h.Translations.GetLanguages)
}
