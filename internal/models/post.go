package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a social media post stored in MongoDB. Likes are a set of
// user ids mutated only through atomic $addToSet/$pull; comments are an
// embedded append-only array.
type Post struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID   `json:"user_id" bson:"user_id"`
	Text      string               `json:"text,omitempty" bson:"text,omitempty"`
	ImageURL  string               `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

// Comment is embedded inside Post. It has no independent identity; its
// position in the array is its insertion order.
type Comment struct {
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// EnrichedComment is a comment with its author resolved to a public profile.
type EnrichedComment struct {
	Comment
	Author PublicProfile `json:"author"`
}

// EnrichedPost is a post with its author and every comment author resolved
// to public profiles for feed responses.
type EnrichedPost struct {
	Post
	Author   PublicProfile     `json:"author"`
	Comments []EnrichedComment `json:"comments"`
}

// CreatePostRequest defines the request body for creating a new post.
// Img carries the raw image payload; it is uploaded to object storage before
// the post is persisted and only the durable URL is stored.
type CreatePostRequest struct {
	Text string `json:"text" validate:"omitempty,max=2000"`
	Img  string `json:"img,omitempty"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
