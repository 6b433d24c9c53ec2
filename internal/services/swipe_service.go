package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SwipeResult reports whether recording a swipe completed a mutual match.
type SwipeResult struct {
	Matched        bool   `json:"matched"`
	MatchID        string `json:"match_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// MatchPairKey joins two user ids in lexicographic order. Both sides of a
// mutual swipe derive the same key, so the unique index on pair_key makes
// match creation idempotent under concurrency.
func MatchPairKey(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + ":" + userB
}

// RecordSwipe appends an immutable swipe fact and, on a mutual right swipe,
// materializes the match.
func RecordSwipe(ctx context.Context, fromID, toID, direction string) (SwipeResult, error) {
	if direction != models.SwipeLeft && direction != models.SwipeRight {
		return SwipeResult{}, errors.New("direction must be left or right")
	}
	if fromID == toID {
		return SwipeResult{}, errors.New("cannot swipe on yourself")
	}

	swipes := db.GetCollection("swipes")

	// Reject a repeat decision up front; the unique index backstops races.
	err := swipes.FindOne(ctx, bson.M{"from_user_id": fromID, "to_user_id": toID}).Err()
	if err == nil {
		return SwipeResult{}, errors.New("already swiped")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return SwipeResult{}, fmt.Errorf("failed to check existing swipe: %w", err)
	}

	swipe := models.Swipe{
		ID:         primitive.NewObjectID(),
		FromUserID: fromID,
		ToUserID:   toID,
		Direction:  direction,
		CreatedAt:  time.Now(),
	}
	if _, err := swipes.InsertOne(ctx, swipe); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return SwipeResult{}, errors.New("already swiped")
		}
		return SwipeResult{}, fmt.Errorf("failed to record swipe: %w", err)
	}

	if direction != models.SwipeRight {
		return SwipeResult{}, nil
	}

	// Reciprocity check: did the other user already swipe right on us?
	err = swipes.FindOne(ctx, bson.M{
		"from_user_id": toID,
		"to_user_id":   fromID,
		"direction":    models.SwipeRight,
	}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return SwipeResult{}, nil
	}
	if err != nil {
		return SwipeResult{}, fmt.Errorf("failed to check reciprocal swipe: %w", err)
	}

	match, err := createMatch(ctx, fromID, toID)
	if err != nil {
		return SwipeResult{}, err
	}
	return SwipeResult{
		Matched:        true,
		MatchID:        match.ID.Hex(),
		ConversationID: match.ConversationID,
	}, nil
}

// createMatch inserts the match for a user pair if it does not exist yet.
// Concurrent mutual swipes both land here; $setOnInsert guarantees a single
// document and both callers read it back.
func createMatch(ctx context.Context, userA, userB string) (models.Match, error) {
	matches := db.GetCollection("matches")
	pairKey := MatchPairKey(userA, userB)
	user1, user2 := userA, userB
	if user2 < user1 {
		user1, user2 = user2, user1
	}

	_, err := matches.UpdateOne(ctx,
		bson.M{"pair_key": pairKey},
		bson.M{"$setOnInsert": bson.M{
			"pair_key":        pairKey,
			"user1_id":        user1,
			"user2_id":        user2,
			"conversation_id": uuid.NewString(),
			"status":          "active",
			"created_at":      time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return models.Match{}, fmt.Errorf("failed to create match: %w", err)
	}

	var match models.Match
	if err := matches.FindOne(ctx, bson.M{"pair_key": pairKey}).Decode(&match); err != nil {
		return models.Match{}, fmt.Errorf("failed to load match: %w", err)
	}
	return match, nil
}

// GetCandidates returns approved users the viewer has not yet decided on,
// excluding the viewer themselves.
func GetCandidates(ctx context.Context, viewerID string) ([]models.User, error) {
	swipes := db.GetCollection("swipes")

	cursor, err := swipes.Find(ctx, bson.M{"from_user_id": viewerID})
	if err != nil {
		return nil, fmt.Errorf("failed to load swipes: %w", err)
	}
	defer cursor.Close(ctx)

	var prior []models.Swipe
	if err := cursor.All(ctx, &prior); err != nil {
		return nil, fmt.Errorf("failed to decode swipes: %w", err)
	}

	excluded := make([]primitive.ObjectID, 0, len(prior)+1)
	if viewerOID, err := primitive.ObjectIDFromHex(viewerID); err == nil {
		excluded = append(excluded, viewerOID)
	}
	for _, s := range prior {
		if oid, err := primitive.ObjectIDFromHex(s.ToUserID); err == nil {
			excluded = append(excluded, oid)
		}
	}

	users := db.GetCollection("users")
	userCursor, err := users.Find(ctx, bson.M{
		"approved": true,
		"_id":      bson.M{"$nin": excluded},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	defer userCursor.Close(ctx)

	var candidates []models.User
	if err := userCursor.All(ctx, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return candidates, nil
}

// MatchSummary is a viewer's match enriched with counterpart display fields.
type MatchSummary struct {
	MatchID        string    `json:"match_id"`
	ConversationID string    `json:"conversation_id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetMatches lists the viewer's matches with counterpart profiles resolved.
// A failed profile lookup still lists the match under a placeholder name.
func GetMatches(ctx context.Context, viewerID string) ([]MatchSummary, error) {
	matches := db.GetCollection("matches")

	cursor, err := matches.Find(ctx, bson.M{"$or": []bson.M{
		{"user1_id": viewerID},
		{"user2_id": viewerID},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	defer cursor.Close(ctx)

	var found []models.Match
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode matches: %w", err)
	}

	summaries := make([]MatchSummary, 0, len(found))
	for _, m := range found {
		otherID, ok := m.OtherUserID(viewerID)
		if !ok {
			continue
		}
		summary := MatchSummary{
			MatchID:        m.ID.Hex(),
			ConversationID: m.ConversationID,
			UserID:         otherID,
			Name:           placeholderName,
			CreatedAt:      m.CreatedAt,
		}
		if profile, err := GetUserByID(ctx, otherID); err == nil {
			summary.Name = profile.Name
			summary.AvatarURL = profile.AvatarURL
			summary.Bio = profile.Bio
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
