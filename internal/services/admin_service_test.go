package services

import (
	"context"
	"testing"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// countCommands tallies started commands of one kind against one collection,
// e.g. inserts into "mail".
func countCommands(mt *mtest.T, name, collection string) int {
	count := 0
	for _, ev := range mt.GetAllStartedEvents() {
		if ev.CommandName != name {
			continue
		}
		if ev.Command.Lookup(name).StringValue() == collection {
			count++
		}
	}
	return count
}

func TestApproveUserEnqueuesMailOncePerTransition(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pending user gets exactly one approval mail", func(mt *mtest.T) {
		db.UseClient(mt.Client, "growmyapp")
		userID := primitive.NewObjectID()
		userDoc := bson.D{
			{Key: "_id", Value: userID},
			{Key: "email", Value: "jane@example.com"},
			{Key: "name", Value: "Jane"},
			{Key: "role", Value: "builder"},
			{Key: "approved", Value: true},
		}
		mt.AddMockResponses(
			// guarded update matches the pending document
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "growmyapp.users", mtest.FirstBatch, userDoc),
			// mail enqueue
			mtest.CreateSuccessResponse(),
		)

		user, err := ApproveUser(context.Background(), userID.Hex())
		require.NoError(mt, err)
		assert.True(mt, user.Approved)
		assert.Equal(mt, 1, countCommands(mt, "insert", "mail"))
	})

	mt.Run("re-approving sends no further mail", func(mt *mtest.T) {
		db.UseClient(mt.Client, "growmyapp")
		userID := primitive.NewObjectID()
		userDoc := bson.D{
			{Key: "_id", Value: userID},
			{Key: "email", Value: "jane@example.com"},
			{Key: "name", Value: "Jane"},
			{Key: "role", Value: "builder"},
			{Key: "approved", Value: true},
		}
		mt.AddMockResponses(
			// guard approved=false matches nothing on an approved user
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(1, "growmyapp.users", mtest.FirstBatch, userDoc),
		)

		user, err := ApproveUser(context.Background(), userID.Hex())
		require.NoError(mt, err)
		assert.True(mt, user.Approved)
		assert.Equal(mt, 0, countCommands(mt, "insert", "mail"))
	})
}
