package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/handlers"
	"github.com/skamga/accounts-api/internal/middleware"
	"github.com/skamga/accounts-api/internal/services"
)

func Setup(
	app *fiber.App,
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Public auth surface
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/reset-password", authHandler.ResetPassword)
	app.Post("/choose-new-password/:token", authHandler.ChooseNewPassword)

	// Bearer-token protected
	protected := middleware.TokenProtected(tokens)
	app.Post("/logout", protected, authHandler.Logout)

	users := app.Group("/users", protected)
	users.Get("/", middleware.AdminRequired(), userHandler.Index)
	users.Post("/", userHandler.Store)
	users.Get("/:id", userHandler.Show)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Destroy)
}
