package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assigned at registration. Admins are designated by ADMIN_EMAIL.
const (
	RoleBuilder  = "builder"
	RoleMarketer = "marketer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Skills    []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Channels  []string           `bson:"channels,omitempty" json:"channels,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Approved  bool               `bson:"approved" json:"approved"`
	Projects  []PortfolioProject `bson:"projects,omitempty" json:"projects,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// PortfolioProject is a builder's embedded portfolio entry, distinct from
// the top-level shelf projects collection.
type PortfolioProject struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`
	LogoURL     string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
}
