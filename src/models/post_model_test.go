package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestPost(owner primitive.ObjectID) Post {
	return Post{
		Id:       primitive.NewObjectID(),
		User:     owner,
		Text:     "hello world",
		Name:     "Test User",
		Avatar:   "https://www.gravatar.com/avatar/abc",
		Likes:    []Like{},
		Comments: []Comment{},
		Date:     time.Now(),
	}
}

func TestHasLike(t *testing.T) {
	owner := primitive.NewObjectID()
	liker := primitive.NewObjectID()
	post := newTestPost(owner)

	assert.False(t, post.HasLike(liker))

	post.Likes = append([]Like{{Id: primitive.NewObjectID(), User: liker}}, post.Likes...)

	assert.True(t, post.HasLike(liker))
	assert.False(t, post.HasLike(owner))
}

func TestLikeListNeverHoldsDuplicateUsers(t *testing.T) {
	post := newTestPost(primitive.NewObjectID())
	liker := primitive.NewObjectID()

	// the store-level guard: a like is only appended when HasLike is false
	for i := 0; i < 3; i++ {
		if !post.HasLike(liker) {
			post.Likes = append([]Like{{Id: primitive.NewObjectID(), User: liker}}, post.Likes...)
		}
	}

	count := 0
	for _, like := range post.Likes {
		if like.User == liker {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCommentByID(t *testing.T) {
	post := newTestPost(primitive.NewObjectID())
	commenter := primitive.NewObjectID()

	comment := Comment{
		Id:   primitive.NewObjectID(),
		User: commenter,
		Text: "nice post",
		Date: time.Now(),
	}
	post.Comments = []Comment{comment}

	found, ok := post.CommentByID(comment.Id)
	require.True(t, ok)
	assert.Equal(t, comment.Id, found.Id)
	assert.Equal(t, commenter, found.User)

	_, ok = post.CommentByID(primitive.NewObjectID())
	assert.False(t, ok)
}

// Deleting a comment must remove the comment that was looked up for the
// ownership check, even when the acting user has an earlier comment in the
// list. The original behavior removed the actor's first comment instead.
func TestDeleteCommentRemovesLookedUpComment(t *testing.T) {
	post := newTestPost(primitive.NewObjectID())
	actor := primitive.NewObjectID()

	first := Comment{Id: primitive.NewObjectID(), User: actor, Text: "first"}
	second := Comment{Id: primitive.NewObjectID(), User: actor, Text: "second"}
	post.Comments = []Comment{first, second}

	target, ok := post.CommentByID(second.Id)
	require.True(t, ok)
	require.Equal(t, actor, target.User)

	// removal pulls by the looked-up comment's own id
	remaining := []Comment{}
	for _, comment := range post.Comments {
		if comment.Id != target.Id {
			remaining = append(remaining, comment)
		}
	}
	post.Comments = remaining

	require.Len(t, post.Comments, 1)
	assert.Equal(t, first.Id, post.Comments[0].Id)
	assert.Equal(t, "first", post.Comments[0].Text)
}

// Full mutation sequence: comment, like, unlike, delete comment, delete post.
// Comment and like list lengths must match at every stage.
func TestPostMutationSequence(t *testing.T) {
	owner := primitive.NewObjectID()
	actor := primitive.NewObjectID()
	post := newTestPost(owner)

	require.Len(t, post.Comments, 0)
	require.Len(t, post.Likes, 0)

	// comment
	comment := Comment{Id: primitive.NewObjectID(), User: actor, Text: "hi"}
	post.Comments = append([]Comment{comment}, post.Comments...)
	require.Len(t, post.Comments, 1)

	// like
	require.False(t, post.HasLike(actor))
	post.Likes = append([]Like{{Id: primitive.NewObjectID(), User: actor}}, post.Likes...)
	require.Len(t, post.Likes, 1)

	// unlike
	require.True(t, post.HasLike(actor))
	remaining := []Like{}
	for _, like := range post.Likes {
		if like.User != actor {
			remaining = append(remaining, like)
		}
	}
	post.Likes = remaining
	require.Len(t, post.Likes, 0)

	// delete comment
	target, ok := post.CommentByID(comment.Id)
	require.True(t, ok)
	comments := []Comment{}
	for _, existing := range post.Comments {
		if existing.Id != target.Id {
			comments = append(comments, existing)
		}
	}
	post.Comments = comments
	require.Len(t, post.Comments, 0)

	// delete post: owner-only
	assert.NotEqual(t, actor, post.User)
	assert.Equal(t, owner, post.User)
}
