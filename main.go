package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/devnetwork/Backend-Dev-Network/src/config"
	"github.com/devnetwork/Backend-Dev-Network/src/lib"
	"github.com/devnetwork/Backend-Dev-Network/src/routes"
)

func main() {
	cfg := config.LoadConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: lib.ErrorHandler,
	})

	app.Use(cors.New())
	app.Use(logger.New())

	lib.ConnectDB(cfg)
	lib.EnsureIndexes()

	routes.AuthRoutes(app)
	routes.PostRoutes(app)
	routes.ProfileRoutes(app)

	fmt.Println("Server is running on http://localhost:" + cfg.Port)
	app.Listen(":" + cfg.Port)
}
