package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devnetwork/Backend-Dev-Network/src/lib"
	"github.com/devnetwork/Backend-Dev-Network/src/models"
)

// ProtectRoute checks for a valid Bearer token, resolves the caller's user
// document, and attaches it to the request context
func ProtectRoute(c *fiber.Ctx) error {

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
	}

	var token string
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
	}

	decoded, err := lib.VerifyJWT(token)
	if err != nil || decoded == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
	}

	userID, ok := decoded["userId"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
	}

	user, err := lib.FindUserByID(c.Context(), objectID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
	}

	c.Locals("user", *user)

	return c.Next()
}

// Authorize restricts a route to the given roles. It must run after ProtectRoute.
func Authorize(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Not authorized to access this route"))
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(lib.ErrorResponse("User role is not authorized to access this route"))
	}
}
