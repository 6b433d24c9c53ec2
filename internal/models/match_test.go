package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchHasUser(t *testing.T) {
	m := Match{User1ID: "alice", User2ID: "bob"}

	assert.True(t, m.HasUser("alice"))
	assert.True(t, m.HasUser("bob"))
	assert.False(t, m.HasUser("carol"))
}

func TestMatchOtherUserID(t *testing.T) {
	m := Match{User1ID: "alice", User2ID: "bob"}

	other, ok := m.OtherUserID("alice")
	assert.True(t, ok)
	assert.Equal(t, "bob", other)

	other, ok = m.OtherUserID("bob")
	assert.True(t, ok)
	assert.Equal(t, "alice", other)

	_, ok = m.OtherUserID("carol")
	assert.False(t, ok)
}
