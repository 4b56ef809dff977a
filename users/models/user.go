package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// User represents a member profile as stored in the users collection.
// Only the fields the post flows need are mapped here.
type User struct {
	ObjectId     uuid.UUID   `json:"objectId" bson:"objectId"`
	Username     string      `json:"username" bson:"username"`
	DisplayName  string      `json:"displayName" bson:"displayName"`
	Avatar       string      `json:"avatar" bson:"avatar"`
	FollowingIds []uuid.UUID `json:"followingIds" bson:"followingIds"`
	CreatedDate  int64       `json:"createdDate" bson:"created_date"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
}
