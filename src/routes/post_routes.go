package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/Backend-Dev-Network/src/controllers"
	"github.com/devnetwork/Backend-Dev-Network/src/middleware"
)

// PostRoutes sets up post routes: listing, creation, deletion, likes, and comments
func PostRoutes(app *fiber.App) {
	post := app.Group("/api/v1/posts")

	post.Get("/", controllers.GetPosts)
	post.Post("/", middleware.ProtectRoute, controllers.CreatePost)
	post.Put("/like/:id", middleware.ProtectRoute, controllers.LikePost)
	post.Put("/unlike/:id", middleware.ProtectRoute, controllers.UnlikePost)
	post.Post("/comment/:id", middleware.ProtectRoute, controllers.CreateComment)
	post.Delete("/comment/:id/:comment_id", middleware.ProtectRoute, controllers.DeleteComment)
	post.Get("/:id", middleware.ProtectRoute, controllers.GetPostByID)
	post.Delete("/:id", middleware.ProtectRoute, controllers.DeletePost)
}
