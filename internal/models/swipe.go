package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// Swipe is an immutable fact recording one user's decision about another.
// A unique index on (from_user_id, to_user_id) keeps it one per pair.
type Swipe struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FromUserID string             `bson:"from_user_id" json:"from_user_id"`
	ToUserID   string             `bson:"to_user_id" json:"to_user_id"`
	Direction  string             `bson:"direction" json:"direction"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
