package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
)

// Mail documents are written to the "mail" collection and picked up by an
// external sender; the server never speaks SMTP itself.

func SignupMail(user models.User) models.Mail {
	return models.Mail{
		To:      []string{user.Email},
		Subject: "Welcome to GrowMyApp",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for signing up as a %s. Your profile is under review. We'll email you as soon as you're approved.</p>",
			user.Name, user.Role),
		Text: fmt.Sprintf(
			"Hi %s, thanks for signing up as a %s. Your profile is under review. We'll email you as soon as you're approved.",
			user.Name, user.Role),
		CreatedAt: time.Now(),
	}
}

func ApprovalMail(user models.User) models.Mail {
	return models.Mail{
		To:      []string{user.Email},
		Subject: "Your GrowMyApp profile is approved",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your profile has been approved. Log in to start browsing and matching.</p>",
			user.Name),
		Text: fmt.Sprintf(
			"Hi %s, your profile has been approved. Log in to start browsing and matching.",
			user.Name),
		CreatedAt: time.Now(),
	}
}

func enqueueMail(ctx context.Context, mail models.Mail) error {
	_, err := db.GetCollection("mail").InsertOne(ctx, mail)
	if err != nil {
		return fmt.Errorf("failed to enqueue mail: %w", err)
	}
	return nil
}

// EnqueueSignupMail queues the signup confirmation for a new account.
func EnqueueSignupMail(ctx context.Context, user models.User) error {
	return enqueueMail(ctx, SignupMail(user))
}

// EnqueueApprovalMail queues the approval notification. Callers must gate
// this on an actual false→true approval transition.
func EnqueueApprovalMail(ctx context.Context, user models.User) error {
	return enqueueMail(ctx, ApprovalMail(user))
}
