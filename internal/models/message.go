package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is append-only; Read is the only field mutated after creation.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FromUserID string             `bson:"from_user_id" json:"from_user_id"`
	ToUserID   string             `bson:"to_user_id" json:"to_user_id"`
	Body       string             `bson:"body" json:"body"`
	ProjectID  string             `bson:"project_id,omitempty" json:"project_id,omitempty"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
