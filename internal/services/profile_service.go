package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileInput carries the editable profile fields collected by the signup
// and edit wizards. Required fields differ by role.
type ProfileInput struct {
	Name      string                    `json:"name"`
	Bio       string                    `json:"bio"`
	Skills    []string                  `json:"skills"`
	Channels  []string                  `json:"channels"`
	AvatarURL string                    `json:"avatar_url"`
	Projects  []models.PortfolioProject `json:"projects"`
}

// ValidateProfile enforces the role-specific required fields server-side.
func ValidateProfile(role string, input ProfileInput) error {
	if input.Name == "" {
		return errors.New("name is required")
	}
	if input.Bio == "" {
		return errors.New("bio is required")
	}
	switch role {
	case models.RoleBuilder:
		if len(input.Skills) == 0 {
			return errors.New("at least one skill is required")
		}
	case models.RoleMarketer:
		if len(input.Channels) == 0 {
			return errors.New("at least one marketing channel is required")
		}
	}
	return nil
}

// GetUserByID fetches a single user document.
func GetUserByID(ctx context.Context, userID string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid user ID: %w", err)
	}

	var user models.User
	err = db.GetCollection("users").FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return models.User{}, fmt.Errorf("user not found: %w", err)
	}
	return user, nil
}

// UpdateProfile validates and writes the viewer's own profile fields.
func UpdateProfile(ctx context.Context, userID string, input ProfileInput) (models.User, error) {
	user, err := GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidateProfile(user.Role, input); err != nil {
		return models.User{}, err
	}

	update := bson.M{
		"name":       input.Name,
		"bio":        input.Bio,
		"skills":     input.Skills,
		"channels":   input.Channels,
		"avatar_url": input.AvatarURL,
		"projects":   input.Projects,
	}
	_, err = db.GetCollection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": update},
	)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return GetUserByID(ctx, userID)
}
