package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SendMessage stores a new message. Only matched counterparts can message
// each other; messages arrive unread.
func SendMessage(ctx context.Context, fromID, toID, body, projectID string) (models.Message, error) {
	if body == "" {
		return models.Message{}, errors.New("message body is required")
	}

	matches := db.GetCollection("matches")
	err := matches.FindOne(ctx, bson.M{"pair_key": MatchPairKey(fromID, toID)}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Message{}, errors.New("you can only message matched users")
	}
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to check match: %w", err)
	}

	message := models.Message{
		ID:         primitive.NewObjectID(),
		FromUserID: fromID,
		ToUserID:   toID,
		Body:       body,
		ProjectID:  projectID,
		Read:       false,
		CreatedAt:  time.Now(),
	}
	if _, err := db.GetCollection("messages").InsertOne(ctx, message); err != nil {
		return models.Message{}, fmt.Errorf("failed to store message: %w", err)
	}
	return message, nil
}

// GetThread returns the full exchange between the viewer and one
// counterpart, oldest first.
func GetThread(ctx context.Context, viewerID, otherID string) ([]models.Message, error) {
	messages := db.GetCollection("messages")

	cursor, err := messages.Find(ctx, bson.M{"$or": []bson.M{
		{"from_user_id": viewerID, "to_user_id": otherID},
		{"from_user_id": otherID, "to_user_id": viewerID},
	}}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer cursor.Close(ctx)

	var thread []models.Message
	if err := cursor.All(ctx, &thread); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return thread, nil
}

// MarkConversationRead flips the read flag on every message the viewer has
// received from one counterpart.
func MarkConversationRead(ctx context.Context, viewerID, otherID string) error {
	messages := db.GetCollection("messages")

	_, err := messages.UpdateMany(ctx,
		bson.M{"from_user_id": otherID, "to_user_id": viewerID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

// ListConversations fetches everything the viewer sent or received and
// folds it into per-counterpart summaries.
func ListConversations(ctx context.Context, viewerID string) ([]ConversationSummary, error) {
	messages := db.GetCollection("messages")

	cursor, err := messages.Find(ctx, bson.M{"$or": []bson.M{
		{"from_user_id": viewerID},
		{"to_user_id": viewerID},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer cursor.Close(ctx)

	var all []models.Message
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	return AggregateConversations(viewerID, all, func(userID string) (models.User, error) {
		return GetUserByID(ctx, userID)
	}), nil
}
