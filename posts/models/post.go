package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Post represents the complete post entity in the posts collection
type Post struct {
	ObjectId uuid.UUID `json:"id" bson:"objectId"`

	// Author reference
	PostedBy uuid.UUID `json:"postedBy" bson:"postedBy"`

	// Content
	Text  string `json:"text" bson:"text"`
	Image string `json:"img,omitempty" bson:"img,omitempty"`

	// Engagement, likes is a set of user ids
	Likes   []uuid.UUID `json:"likes" bson:"likes"`
	Replies []Reply     `json:"replies" bson:"replies"`

	// Timestamps, both Unix and native for compatibility
	CreatedDate int64     `json:"createdDate" bson:"created_date"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// Reply represents a reply embedded in a post document
type Reply struct {
	UserId         uuid.UUID `json:"userId" bson:"userId"`
	Text           string    `json:"text" bson:"text"`
	UserProfilePic string    `json:"userProfilePic,omitempty" bson:"userProfilePic,omitempty"`
	Username       string    `json:"username,omitempty" bson:"username,omitempty"`
	CreatedDate    int64     `json:"createdDate" bson:"created_date"`
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	PostedBy string `json:"postedBy"`
	Text     string `json:"text"`
	Img      string `json:"img,omitempty"`
}

// ReplyRequest represents the request body for replying to a post
type ReplyRequest struct {
	Text string `json:"text"`
}

// MessageResponse is the body returned by operations that only report an outcome
type MessageResponse struct {
	Message string `json:"message"`
}
