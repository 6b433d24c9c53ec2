package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddWaitlistEntry appends a landing-page signup. Append-only; consumed by
// manual review.
func AddWaitlistEntry(ctx context.Context, name, email string) (models.WaitlistEntry, error) {
	if name == "" {
		return models.WaitlistEntry{}, errors.New("name is required")
	}
	if !strings.Contains(email, "@") {
		return models.WaitlistEntry{}, errors.New("invalid email address")
	}

	entry := models.WaitlistEntry{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if _, err := db.GetCollection("waitlist").InsertOne(ctx, entry); err != nil {
		return models.WaitlistEntry{}, fmt.Errorf("failed to join waitlist: %w", err)
	}
	return entry, nil
}
