package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a builder's shelf project: a previously built, under-marketed
// product listed for marketers to browse.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID     string             `bson:"owner_id" json:"owner_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	State       string             `bson:"state,omitempty" json:"state,omitempty"`
	Terms       string             `bson:"terms" json:"terms"`
	LogoURL     string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	ImageURLs   []string           `bson:"image_urls,omitempty" json:"image_urls,omitempty"`
	Views       int64              `bson:"views" json:"views"`
	Interest    int64              `bson:"interest" json:"interest"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
