package models

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &User{
		Username: "first",
		Email:    "taken@test.dev",
		Password: "hash",
	})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, &User{
		Username: "second",
		Email:    "taken@test.dev",
		Password: "hash",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestMarkVerified(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	user := seedUser(t, r, "verifyme@test.dev")
	require.False(t, user.IsVerified)

	require.NoError(t, r.MarkVerified(ctx, user.ID))

	reloaded, err := r.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsVerified)
}

func TestUpdateUserUnknown(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.UpdateUser(context.Background(), uuid.New(), map[string]interface{}{
		"username": "ghost",
	})
	require.ErrorIs(t, err, ErrNotFound)
}
