package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account stored in MongoDB. The identity/auth subsystem
// owns this document; the engagement core only reads `following` and mutates
// `liked_posts` as a side effect of like/unlike.
type User struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username    string               `json:"username" bson:"username"`
	FullName    string               `json:"full_name" bson:"full_name"`
	Email       string               `json:"-" bson:"email"`
	Password    string               `json:"-" bson:"password"` // hashed, never serialized
	FirebaseUID string               `json:"-" bson:"firebase_uid,omitempty"`
	ProfileImg  string               `json:"profile_img,omitempty" bson:"profile_img,omitempty"`
	Bio         string               `json:"bio,omitempty" bson:"bio,omitempty"`
	Following   []primitive.ObjectID `json:"following" bson:"following"`
	Followers   []primitive.ObjectID `json:"followers" bson:"followers"`
	LikedPosts  []primitive.ObjectID `json:"liked_posts" bson:"liked_posts"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

// PublicProfile is the credential-stripped view of a user embedded in feed
// responses (post authors, comment authors).
type PublicProfile struct {
	ID         primitive.ObjectID `json:"id"`
	Username   string             `json:"username"`
	FullName   string             `json:"full_name"`
	ProfileImg string             `json:"profile_img,omitempty"`
	Bio        string             `json:"bio,omitempty"`
}

// ToPublic strips credential and secret fields from the user record.
func (u *User) ToPublic() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		ProfileImg: u.ProfileImg,
		Bio:        u.Bio,
	}
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
