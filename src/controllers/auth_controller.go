package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/devnetwork/Backend-Dev-Network/src/lib"
	"github.com/devnetwork/Backend-Dev-Network/src/models"
)

// Register handles user registration: validates input, checks for duplicates,
// hashes the password, snapshots a gravatar URL, and returns a JWT
func Register(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	collection := lib.DB.Collection("users")

	var existing models.User
	err := collection.FindOne(c.Context(), bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("User already exists"))
	}
	if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Error fetching user"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to create user"))
	}

	newUser := models.User{
		Id:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Avatar:    lib.GravatarURL(req.Email),
		Role:      "user",
		CreatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(c.Context(), newUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to create user"))
	}

	token, err := lib.GenerateJWT(newUser.Id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to generate token"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// Login authenticates a user by email and password and returns a JWT
func Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	var user models.User
	err := lib.DB.Collection("users").FindOne(c.Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.ErrorResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(user.Id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to generate token"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// GetMe returns the authenticated user's own record
func GetMe(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(user))
}
