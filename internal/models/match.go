package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match records a mutual right-swipe between two users. PairKey is the
// lexicographically sorted id pair, unique-indexed so concurrent mutual
// swipes converge on a single document.
type Match struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PairKey        string             `bson:"pair_key" json:"-"`
	User1ID        string             `bson:"user1_id" json:"user1_id"`
	User2ID        string             `bson:"user2_id" json:"user2_id"`
	ConversationID string             `bson:"conversation_id" json:"conversation_id"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUserID returns the counterpart of userID in this match.
func (m *Match) OtherUserID(userID string) (string, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return "", false
}
