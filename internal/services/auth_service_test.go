package services

import (
	"context"
	"testing"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)

	assert.True(t, VerifyPassword("hunter2secret", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
}

func TestGenerateJWTClaims(t *testing.T) {
	token, err := GenerateJWT("user-123", "builder", true)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "builder", claims["role"])
	assert.Equal(t, true, claims["approved"])
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     string
		wantErr  string
	}{
		{name: "valid builder", email: "jane@example.com", password: "secret1", role: "builder"},
		{name: "valid marketer", email: "sam@example.com", password: "secret1", role: "marketer"},
		{name: "bad email", email: "nope", password: "secret1", role: "builder", wantErr: "invalid email address"},
		{name: "weak password", email: "jane@example.com", password: "12345", role: "builder", wantErr: "password must be at least 6 characters"},
		{name: "unknown role", email: "jane@example.com", password: "secret1", role: "wizard", wantErr: "role must be builder or marketer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.email, tt.password, tt.role)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing email creates no document", func(mt *mtest.T) {
		db.UseClient(mt.Client, "growmyapp")
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "jane@example.com"},
			{Key: "name", Value: "Jane"},
			{Key: "role", Value: "builder"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "growmyapp.users", mtest.FirstBatch, existing),
		)

		_, err := RegisterUser(context.Background(), "jane@example.com", "secret1", "Jane", "builder")
		require.EqualError(mt, err, "email already in use")
		assert.Equal(mt, 0, countCommands(mt, "insert", "users"))
		assert.Equal(mt, 0, countCommands(mt, "insert", "mail"))
	})

	mt.Run("losing an insert race reads as duplicate email", func(mt *mtest.T) {
		db.UseClient(mt.Client, "growmyapp")
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "growmyapp.users", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		_, err := RegisterUser(context.Background(), "jane@example.com", "secret1", "Jane", "builder")
		require.EqualError(mt, err, "email already in use")
		assert.Equal(mt, 0, countCommands(mt, "insert", "mail"))
	})
}
