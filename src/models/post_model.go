package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	Id       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User     primitive.ObjectID `json:"user" bson:"user"`
	Text     string             `json:"text" bson:"text"`
	Name     string             `json:"name" bson:"name"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Likes    []Like             `json:"likes" bson:"likes"`
	Comments []Comment          `json:"comments" bson:"comments"`
	Date     time.Time          `json:"date" bson:"date"`
}

// Like exists only embedded in a post; it carries the liking user and nothing else
type Like struct {
	Id   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User primitive.ObjectID `json:"user" bson:"user"`
}

type Comment struct {
	Id     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User   primitive.ObjectID `json:"user" bson:"user"`
	Text   string             `json:"text" bson:"text"`
	Name   string             `json:"name" bson:"name"`
	Avatar string             `json:"avatar" bson:"avatar"`
	Date   time.Time          `json:"date" bson:"date"`
}

// HasLike reports whether the given user already likes the post
func (p *Post) HasLike(userID primitive.ObjectID) bool {
	for _, like := range p.Likes {
		if like.User == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the comment with the given id, if any
func (p *Post) CommentByID(commentID primitive.ObjectID) (Comment, bool) {
	for _, comment := range p.Comments {
		if comment.Id == commentID {
			return comment, true
		}
	}
	return Comment{}, false
}
