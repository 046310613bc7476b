package lib

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnetwork/Backend-Dev-Network/src/models"
)

// Validate is the shared request-body validator
var Validate = validator.New()

// SuccessResponse wraps a payload in the uniform success envelope
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ErrorResponse wraps a message in the uniform error envelope
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"error":   message,
	}
}

// RequiredFieldMessage turns a validation failure into a caller-facing message
func RequiredFieldMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return errs[0].Field() + " is required"
	}
	return "Invalid request body"
}

// IsOwner reports whether the acting identity owns the resource
func IsOwner(actingID, ownerID primitive.ObjectID) bool {
	return actingID == ownerID
}

// ErrorHandler converts uncaught errors into the error envelope without
// leaking internals
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server Error"

	if fiberErr, ok := err.(*fiber.Error); ok {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(ErrorResponse(message))
}

func jwtSecret() string {
	if Cfg != nil && Cfg.JWTSecret != "" {
		return Cfg.JWTSecret
	}
	return "fallback-secret-key"
}

func jwtExpire() time.Duration {
	if Cfg != nil && Cfg.JWTExpire > 0 {
		return Cfg.JWTExpire
	}
	return 24 * time.Hour
}

// GenerateJWT generates a signed token for the given user ID
func GenerateJWT(userID primitive.ObjectID) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID.Hex(),
		"exp":    time.Now().Add(jwtExpire()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecret()))
}

// VerifyJWT verifies and decodes a token, returning its claims
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(jwtSecret()), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
}

// FindUserByID fetches a user by ID, excluding the password from the result
func FindUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := DB.Collection("users").FindOne(
		ctx,
		bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&user)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GravatarURL builds the avatar snapshot URL for an email address
func GravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}

// PopulateProfiles resolves each profile's owner to the public user projection
func PopulateProfiles(c *fiber.Ctx, profiles []models.Profile) ([]models.ProfileDto, error) {
	userIDs := make([]primitive.ObjectID, 0, len(profiles))
	seen := make(map[primitive.ObjectID]bool)
	for _, profile := range profiles {
		if !seen[profile.User] {
			seen[profile.User] = true
			userIDs = append(userIDs, profile.User)
		}
	}

	cursor, err := DB.Collection("users").Find(
		c.Context(),
		bson.M{"_id": bson.M{"$in": userIDs}},
		options.Find().SetProjection(bson.M{"name": 1, "avatar": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c.Context())

	var users []models.UserDto
	if err := cursor.All(c.Context(), &users); err != nil {
		return nil, err
	}

	usersByID := make(map[primitive.ObjectID]models.UserDto, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	populated := make([]models.ProfileDto, len(profiles))
	for i, profile := range profiles {
		populated[i] = models.ProfileDto{
			Profile: profile,
			User:    usersByID[profile.User],
		}
	}

	return populated, nil
}
