package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/Backend-Dev-Network/src/controllers"
	"github.com/devnetwork/Backend-Dev-Network/src/middleware"
)

// ProfileRoutes sets up profile routes: listing, create/update, deletion,
// experience/education entries, and the GitHub repo proxy
func ProfileRoutes(app *fiber.App) {
	profile := app.Group("/api/v1/profile")

	profile.Get("/", middleware.AdvancedResults("profiles", true), controllers.GetProfiles)
	profile.Post("/", middleware.ProtectRoute, controllers.CreateProfile)
	profile.Delete("/", middleware.ProtectRoute, controllers.DeleteProfile)
	profile.Put("/experience", middleware.ProtectRoute, controllers.AddExperience)
	profile.Delete("/experience/:exp_id", middleware.ProtectRoute, controllers.DeleteExperience)
	profile.Put("/education", middleware.ProtectRoute, controllers.AddEducation)
	profile.Delete("/education/:edu_id", middleware.ProtectRoute, controllers.DeleteEducation)
	profile.Get("/github/:username", controllers.GetGithubRepos)
	profile.Get("/:user_id", controllers.GetProfile)
}
