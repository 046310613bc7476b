package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/Backend-Dev-Network/src/controllers"
	"github.com/devnetwork/Backend-Dev-Network/src/middleware"
)

// AuthRoutes sets up registration, login, and current-user routes
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.ProtectRoute, controllers.GetMe)
}
