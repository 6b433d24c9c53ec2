package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"github.com/cofndrly/growmyapp-server/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListUsersByStatus returns users filtered by approval state:
// "pending", "approved" or "all".
func ListUsersByStatus(ctx context.Context, status string) ([]models.User, error) {
	filter := bson.M{}
	switch status {
	case "pending":
		filter["approved"] = false
	case "approved":
		filter["approved"] = true
	case "", "all":
	default:
		return nil, errors.New("status must be pending, approved or all")
	}

	cursor, err := db.GetCollection("users").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// ApproveUser flips a pending user to approved. The update is guarded on
// approved=false, so the approval mail goes out exactly once per transition;
// re-approving is a no-op.
func ApproveUser(ctx context.Context, userID string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid user ID: %w", err)
	}

	users := db.GetCollection("users")
	result, err := users.UpdateOne(ctx,
		bson.M{"_id": objID, "approved": false},
		bson.M{"$set": bson.M{"approved": true}},
	)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to approve user: %w", err)
	}

	user, err := GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if result.ModifiedCount == 1 {
		if err := EnqueueApprovalMail(ctx, user); err != nil {
			log.Printf("failed to enqueue approval mail for %s: %v", user.Email, err)
		}
	}
	return user, nil
}

// RejectUser hard-deletes a pending user and cleans up their traces
// (swipes, messages, avatar) in parallel, best effort.
func RejectUser(ctx context.Context, userID string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	user, err := GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	result, err := db.GetCollection("users").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.New("user not found")
	}

	_, errs := utils.RunParallelTasks([]utils.ParallelTask{
		func() (interface{}, error) {
			return db.GetCollection("swipes").DeleteMany(ctx, bson.M{"$or": []bson.M{
				{"from_user_id": userID},
				{"to_user_id": userID},
			}})
		},
		func() (interface{}, error) {
			return db.GetCollection("messages").DeleteMany(ctx, bson.M{"$or": []bson.M{
				{"from_user_id": userID},
				{"to_user_id": userID},
			}})
		},
		func() (interface{}, error) {
			if user.AvatarURL == "" {
				return nil, nil
			}
			return nil, RemoveMediaByURL(ctx, user.AvatarURL)
		},
	})
	for _, err := range errs {
		if err != nil {
			log.Printf("cleanup after rejecting %s: %v", userID, err)
		}
	}
	return nil
}
