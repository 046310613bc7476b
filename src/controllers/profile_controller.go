package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnetwork/Backend-Dev-Network/src/lib"
	"github.com/devnetwork/Backend-Dev-Network/src/models"
)

// GetProfiles returns the result envelope built by the AdvancedResults middleware
func GetProfiles(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(c.Locals("advancedResults"))
}

// CreateProfile creates the authenticated user's profile, or updates it in
// place when one already exists. Only fields present in the request are set.
func CreateProfile(c *fiber.Ctx) error {
	var input models.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	user := c.Locals("user").(models.User)

	fields := input.Fields()

	collection := lib.DB.Collection("profiles")

	var existing models.Profile
	err := collection.FindOne(c.Context(), bson.M{"user": user.Id}).Decode(&existing)
	if err == nil {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var updated models.Profile
		err = collection.FindOneAndUpdate(
			c.Context(),
			bson.M{"user": user.Id},
			bson.M{"$set": fields},
			opts,
		).Decode(&updated)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to update profile"))
		}

		return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updated))
	}
	if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Error fetching profile"))
	}

	doc := fields
	doc["_id"] = primitive.NewObjectID()
	doc["user"] = user.Id
	doc["experience"] = []models.Experience{}
	doc["education"] = []models.Education{}
	doc["date"] = time.Now()

	if _, err := collection.InsertOne(c.Context(), doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to create profile"))
	}

	var created models.Profile
	if err := collection.FindOne(c.Context(), bson.M{"_id": doc["_id"]}).Decode(&created); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Error fetching profile"))
	}

	return c.Status(fiber.StatusCreated).JSON(lib.SuccessResponse(created))
}

// GetProfile returns a profile by its owning user's ID, with the owner
// resolved to name and avatar
func GetProfile(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid user ID"))
	}

	collection := lib.DB.Collection("profiles")

	var profile models.Profile
	if err := collection.FindOne(c.Context(), bson.M{"user": userID}).Decode(&profile); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Profile found"))
	}

	populated, err := lib.PopulateProfiles(c, []models.Profile{profile})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Error loading profile data"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(populated[0]))
}

// DeleteProfile removes the authenticated user's profile, their posts, and
// the user record itself
func DeleteProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	if _, err := lib.DB.Collection("posts").DeleteMany(c.Context(), bson.M{"user": user.Id}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete posts"))
	}

	if _, err := lib.DB.Collection("profiles").DeleteOne(c.Context(), bson.M{"user": user.Id}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete profile"))
	}

	if _, err := lib.DB.Collection("users").DeleteOne(c.Context(), bson.M{"_id": user.Id}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete user"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(fiber.Map{}))
}

// AddExperience prepends a new experience entry to the authenticated user's profile
func AddExperience(c *fiber.Ctx) error {
	var input models.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	user := c.Locals("user").(models.User)

	update := bson.M{
		"$push": bson.M{
			"experience": bson.M{
				"$each":     []models.Experience{input.Entry()},
				"$position": 0,
			},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Profile
	err := lib.DB.Collection("profiles").FindOneAndUpdate(c.Context(), bson.M{"user": user.Id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Profile found"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to add experience"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updated))
}

// DeleteExperience removes an experience entry by its ID
func DeleteExperience(c *fiber.Ctx) error {
	expID, err := primitive.ObjectIDFromHex(c.Params("exp_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid experience ID"))
	}

	user := c.Locals("user").(models.User)

	collection := lib.DB.Collection("profiles")

	var profile models.Profile
	if err := collection.FindOne(c.Context(), bson.M{"user": user.Id}).Decode(&profile); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Profile found"))
	}

	if _, found := profile.ExperienceByID(expID); !found {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("Experience not found"))
	}

	update := bson.M{
		"$pull": bson.M{
			"experience": bson.M{"_id": expID},
		},
	}

	if _, err := collection.UpdateOne(c.Context(), bson.M{"user": user.Id}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete experience"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(fiber.Map{}))
}

// AddEducation prepends a new education entry to the authenticated user's profile
func AddEducation(c *fiber.Ctx) error {
	var input models.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	user := c.Locals("user").(models.User)

	update := bson.M{
		"$push": bson.M{
			"education": bson.M{
				"$each":     []models.Education{input.Entry()},
				"$position": 0,
			},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Profile
	err := lib.DB.Collection("profiles").FindOneAndUpdate(c.Context(), bson.M{"user": user.Id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Profile found"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to add education"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updated))
}

// DeleteEducation removes an education entry by its ID
func DeleteEducation(c *fiber.Ctx) error {
	eduID, err := primitive.ObjectIDFromHex(c.Params("edu_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid education ID"))
	}

	user := c.Locals("user").(models.User)

	collection := lib.DB.Collection("profiles")

	var profile models.Profile
	if err := collection.FindOne(c.Context(), bson.M{"user": user.Id}).Decode(&profile); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Profile found"))
	}

	if _, found := profile.EducationByID(eduID); !found {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("Education not found"))
	}

	update := bson.M{
		"$pull": bson.M{
			"education": bson.M{"_id": eduID},
		},
	}

	if _, err := collection.UpdateOne(c.Context(), bson.M{"user": user.Id}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete education"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(fiber.Map{}))
}

// GetGithubRepos proxies the user's most recent repositories from GitHub
func GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")

	repos, err := lib.FetchGithubRepos(username)
	if err == lib.ErrGithubNotFound {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Github profile found"))
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(lib.ErrorResponse("Github unavailable"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(repos))
}
