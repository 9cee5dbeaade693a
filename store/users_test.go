package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/utils"
)

func TestVerify(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	hash, err := utils.HashPassword("sekrit")
	require.NoError(t, err)

	userDoc := bson.D{
		{Key: "_id", Value: "user-1"},
		{Key: "full_name", Value: "Alice"},
		{Key: "email", Value: "alice@example.com"},
		{Key: "password_hash", Value: hash},
		{Key: "role", Value: "participant"},
	}

	mt.Run("matching credentials", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "santa_game.users", mtest.FirstBatch, userDoc))

		s := &Store{users: mt.Coll}
		user, err := s.Verify(context.Background(), "alice@example.com", "sekrit")
		require.NoError(mt, err)
		require.Equal(mt, "user-1", user.ID)
		require.Equal(mt, "Alice", user.FullName)
	})

	mt.Run("wrong password", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "santa_game.users", mtest.FirstBatch, userDoc))

		s := &Store{users: mt.Coll}
		_, err := s.Verify(context.Background(), "alice@example.com", "not-sekrit")
		require.ErrorIs(mt, err, ErrInvalidCredentials)
	})

	mt.Run("unknown email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "santa_game.users", mtest.FirstBatch))

		s := &Store{users: mt.Coll}
		_, err := s.Verify(context.Background(), "nobody@example.com", "whatever")
		require.ErrorIs(mt, err, ErrInvalidCredentials)
	})

	mt.Run("store failure is not a credential error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		s := &Store{users: mt.Coll}
		_, err := s.Verify(context.Background(), "alice@example.com", "sekrit")
		require.Error(mt, err)
		require.False(mt, errors.Is(err, ErrInvalidCredentials),
			"an unreachable store must surface as an internal failure, not a 401")
	})
}
