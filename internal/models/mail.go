package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mail is a transactional email queued in the "mail" collection and
// consumed by an external sender. The server only enqueues.
type Mail struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	To        []string           `bson:"to" json:"to"`
	Subject   string             `bson:"subject" json:"subject"`
	HTML      string             `bson:"html,omitempty" json:"html,omitempty"`
	Text      string             `bson:"text,omitempty" json:"text,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
