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

// CreatePost creates a new post for the authenticated user, snapshotting the
// author's name and avatar at creation time
func CreatePost(c *fiber.Ctx) error {
	type CreatePostRequest struct {
		Text string `json:"text" validate:"required"`
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	user := c.Locals("user").(models.User)

	author, err := lib.FindUserByID(c.Context(), user.Id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No User found"))
	}

	newPost := models.Post{
		Id:       primitive.NewObjectID(),
		User:     author.Id,
		Text:     req.Text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
		Date:     time.Now(),
	}

	collection := lib.DB.Collection("posts")
	if _, err := collection.InsertOne(c.Context(), newPost); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to create post"))
	}

	return c.Status(fiber.StatusCreated).JSON(lib.SuccessResponse(newPost))
}

// GetPosts returns all posts, newest first
func GetPosts(c *fiber.Ctx) error {
	collection := lib.DB.Collection("posts")

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := collection.Find(c.Context(), bson.M{}, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Error fetching posts"))
	}
	defer cursor.Close(c.Context())

	posts := []models.Post{}
	if err := cursor.All(c.Context(), &posts); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Error decoding posts"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(posts))
}

// GetPostByID returns a single post by its ID
func GetPostByID(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid post ID"))
	}

	collection := lib.DB.Collection("posts")

	var post models.Post
	if err := collection.FindOne(c.Context(), bson.M{"_id": postID}).Decode(&post); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(post))
}

// DeletePost deletes a post by ID if the authenticated user is the author
func DeletePost(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid post ID"))
	}

	user := c.Locals("user").(models.User)

	collection := lib.DB.Collection("posts")

	var post models.Post
	if err := collection.FindOne(c.Context(), bson.M{"_id": postID}).Decode(&post); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
	}

	if !lib.IsOwner(user.Id, post.User) {
		return c.Status(fiber.StatusForbidden).JSON(lib.ErrorResponse("User Not Authorized to delete the post"))
	}

	if _, err := collection.DeleteOne(c.Context(), bson.M{"_id": postID}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete post"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(fiber.Map{}))
}

// LikePost adds the authenticated user's like to the front of the like list.
// The filter rejects a second like from the same user at the store layer, so
// two concurrent likes cannot both commit.
func LikePost(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid post ID"))
	}

	user := c.Locals("user").(models.User)

	newLike := models.Like{
		Id:   primitive.NewObjectID(),
		User: user.Id,
	}

	filter := bson.M{
		"_id":        postID,
		"likes.user": bson.M{"$ne": user.Id},
	}
	update := bson.M{
		"$push": bson.M{
			"likes": bson.M{
				"$each":     []models.Like{newLike},
				"$position": 0,
			},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	collection := lib.DB.Collection("posts")

	var updatedPost models.Post
	err = collection.FindOneAndUpdate(c.Context(), filter, update, opts).Decode(&updatedPost)
	if err == mongo.ErrNoDocuments {
		var post models.Post
		if err := collection.FindOne(c.Context(), bson.M{"_id": postID}).Decode(&post); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
		}
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Post already liked"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to update post"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updatedPost.Likes))
}

// UnlikePost removes the authenticated user's like. The filter requires the
// like to exist, so the pull and the check are a single store operation.
func UnlikePost(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid post ID"))
	}

	user := c.Locals("user").(models.User)

	filter := bson.M{
		"_id":        postID,
		"likes.user": user.Id,
	}
	update := bson.M{
		"$pull": bson.M{
			"likes": bson.M{"user": user.Id},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	collection := lib.DB.Collection("posts")

	var updatedPost models.Post
	err = collection.FindOneAndUpdate(c.Context(), filter, update, opts).Decode(&updatedPost)
	if err == mongo.ErrNoDocuments {
		var post models.Post
		if err := collection.FindOne(c.Context(), bson.M{"_id": postID}).Decode(&post); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
		}
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Post is not yet liked"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to update post"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updatedPost.Likes))
}

// CreateComment prepends a new comment to a post, snapshotting the acting
// user's name and avatar
func CreateComment(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid post ID"))
	}

	type CreateCommentRequest struct {
		Text string `json:"text" validate:"required"`
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	if err := lib.Validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(lib.RequiredFieldMessage(err)))
	}

	user := c.Locals("user").(models.User)

	author, err := lib.FindUserByID(c.Context(), user.Id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No User found"))
	}

	newComment := models.Comment{
		Id:     primitive.NewObjectID(),
		User:   author.Id,
		Text:   req.Text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now(),
	}

	update := bson.M{
		"$push": bson.M{
			"comments": bson.M{
				"$each":     []models.Comment{newComment},
				"$position": 0,
			},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	collection := lib.DB.Collection("posts")

	var updatedPost models.Post
	err = collection.FindOneAndUpdate(c.Context(), bson.M{"_id": postID}, update, opts).Decode(&updatedPost)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to add comment"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updatedPost.Comments))
}

// DeleteComment removes a comment from a post. The comment is located by its
// own id, the ownership check runs against that comment, and the pull targets
// the same id.
func DeleteComment(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid post ID"))
	}

	commentID, err := primitive.ObjectIDFromHex(c.Params("comment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid comment ID"))
	}

	user := c.Locals("user").(models.User)

	collection := lib.DB.Collection("posts")

	var post models.Post
	if err := collection.FindOne(c.Context(), bson.M{"_id": postID}).Decode(&post); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
	}

	comment, found := post.CommentByID(commentID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("Comment does not exist"))
	}

	if !lib.IsOwner(user.Id, comment.User) {
		return c.Status(fiber.StatusForbidden).JSON(lib.ErrorResponse("User not authorized"))
	}

	update := bson.M{
		"$pull": bson.M{
			"comments": bson.M{"_id": commentID},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedPost models.Post
	err = collection.FindOneAndUpdate(c.Context(), bson.M{"_id": postID}, update, opts).Decode(&updatedPost)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse("No Post found"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Failed to delete comment"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.SuccessResponse(updatedPost.Comments))
}
