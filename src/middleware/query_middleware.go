package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnetwork/Backend-Dev-Network/src/lib"
)

// AdvancedResults is a generic list-query middleware. It applies
// select/sort/page/limit query parameters against the given collection and
// attaches the result envelope to the request context for the handler.
// When populateUser is set, each document's "user" reference is resolved to
// the public name/avatar projection.
func AdvancedResults(collection string, populateUser bool) fiber.Handler {
	return func(c *fiber.Ctx) error {

		findOpts := options.Find()

		if fields := c.Query("select"); fields != "" {
			projection := bson.M{}
			for _, field := range strings.Split(fields, ",") {
				projection[strings.TrimSpace(field)] = 1
			}
			findOpts.SetProjection(projection)
		}

		if sortBy := c.Query("sort"); sortBy != "" {
			sort := bson.D{}
			for _, field := range strings.Split(sortBy, ",") {
				field = strings.TrimSpace(field)
				if strings.HasPrefix(field, "-") {
					sort = append(sort, bson.E{Key: field[1:], Value: -1})
				} else {
					sort = append(sort, bson.E{Key: field, Value: 1})
				}
			}
			findOpts.SetSort(sort)
		} else {
			findOpts.SetSort(bson.M{"date": -1})
		}

		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		limit := c.QueryInt("limit", 25)
		if limit < 1 {
			limit = 25
		}
		skip := (page - 1) * limit
		findOpts.SetSkip(int64(skip)).SetLimit(int64(limit))

		coll := lib.DB.Collection(collection)

		total, err := coll.CountDocuments(c.Context(), bson.M{})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server Error"))
		}

		cursor, err := coll.Find(c.Context(), bson.M{}, findOpts)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server Error"))
		}
		defer cursor.Close(c.Context())

		var results []bson.M
		if err := cursor.All(c.Context(), &results); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server Error"))
		}

		if populateUser {
			if err := populateUsers(c, results); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server Error"))
			}
		}

		pagination := fiber.Map{}
		if int64(skip+limit) < total {
			pagination["next"] = fiber.Map{"page": page + 1, "limit": limit}
		}
		if skip > 0 {
			pagination["prev"] = fiber.Map{"page": page - 1, "limit": limit}
		}

		c.Locals("advancedResults", fiber.Map{
			"success":    true,
			"count":      len(results),
			"pagination": pagination,
			"data":       results,
		})

		return c.Next()
	}
}

// populateUsers swaps each document's "user" ObjectID for its name/avatar projection
func populateUsers(c *fiber.Ctx, results []bson.M) error {
	userIDs := make([]primitive.ObjectID, 0, len(results))
	for _, result := range results {
		if id, ok := result["user"].(primitive.ObjectID); ok {
			userIDs = append(userIDs, id)
		}
	}

	if len(userIDs) == 0 {
		return nil
	}

	cursor, err := lib.DB.Collection("users").Find(
		c.Context(),
		bson.M{"_id": bson.M{"$in": userIDs}},
		options.Find().SetProjection(bson.M{"name": 1, "avatar": 1}),
	)
	if err != nil {
		return err
	}
	defer cursor.Close(c.Context())

	var users []bson.M
	if err := cursor.All(c.Context(), &users); err != nil {
		return err
	}

	usersByID := make(map[primitive.ObjectID]bson.M, len(users))
	for _, user := range users {
		if id, ok := user["_id"].(primitive.ObjectID); ok {
			usersByID[id] = user
		}
	}

	for _, result := range results {
		if id, ok := result["user"].(primitive.ObjectID); ok {
			if user, found := usersByID[id]; found {
				result["user"] = user
			}
		}
	}

	return nil
}
