package services

import (
	"testing"

	"github.com/cofndrly/growmyapp-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupMail(t *testing.T) {
	mail := SignupMail(models.User{Name: "Jane", Email: "jane@example.com", Role: "builder"})

	require.Equal(t, []string{"jane@example.com"}, mail.To)
	assert.Equal(t, "Welcome to GrowMyApp", mail.Subject)
	assert.Contains(t, mail.HTML, "Jane")
	assert.Contains(t, mail.HTML, "builder")
	assert.Contains(t, mail.Text, "under review")
	assert.False(t, mail.CreatedAt.IsZero())
}

func TestApprovalMail(t *testing.T) {
	mail := ApprovalMail(models.User{Name: "Sam", Email: "sam@example.com"})

	require.Equal(t, []string{"sam@example.com"}, mail.To)
	assert.Contains(t, mail.Subject, "approved")
	assert.Contains(t, mail.HTML, "Sam")
	assert.Contains(t, mail.Text, "approved")
}
