package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/utils"
)

// CreateAdmin inserts an admin account with a generated password and
// returns the id along with the plaintext password, which is shown
// exactly once at bootstrap. Admins never carry pairing fields.
func (s *Store) CreateAdmin(ctx context.Context, fullName, email string) (string, string, error) {
	password, err := utils.GeneratePassword(12)
	if err != nil {
		return "", "", fmt.Errorf("generate admin password: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("hash admin password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    now(),
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", "", ErrDuplicateEmail
		}
		return "", "", fmt.Errorf("insert admin: %w", err)
	}
	return user.ID, password, nil
}

// CreateParticipant inserts a participant whose initial password is the
// email address itself; they are prompted to change it on first login.
func (s *Store) CreateParticipant(ctx context.Context, fullName, email string) (string, error) {
	hash, err := utils.HashPassword(email)
	if err != nil {
		return "", fmt.Errorf("hash initial password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleParticipant,
		CreatedAt:    now(),
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("insert participant: %w", err)
	}
	return user.ID, nil
}

// Verify checks email+password and returns the matching user. Unknown
// email and wrong password produce the same error; store failures do
// not masquerade as bad credentials.
func (s *Store) Verify(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// UpdatePassword rehashes and stores a new password and marks the
// initial-password step as done.
func (s *Store) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	res, err := s.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{
		"password_hash":        hash,
		"initial_password_set": true,
	}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPairing writes is_paired and paired_with together in one document
// update. A nil pairedWith resets the user to unpaired.
func (s *Store) SetPairing(ctx context.Context, userID string, pairedWith *string) error {
	update := bson.M{"$set": bson.M{
		"is_paired":   pairedWith != nil,
		"paired_with": pairedWith,
	}}
	if _, err := s.users.UpdateByID(ctx, userID, update); err != nil {
		return fmt.Errorf("set pairing for %s: %w", userID, err)
	}
	return nil
}

// GetByID fetches a single user.
func (s *Store) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// GetByEmail fetches a single user by email (stored case-sensitively).
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// ListParticipants returns every participant account, in no particular
// order.
func (s *Store) ListParticipants(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"role": models.RoleParticipant})
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer cursor.Close(ctx)

	participants := []models.User{}
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("decode participants: %w", err)
	}
	return participants, nil
}

// DeleteParticipants removes every participant account, leaving admins
// in place. Used by the clear-data operation.
func (s *Store) DeleteParticipants(ctx context.Context) (int64, error) {
	res, err := s.users.DeleteMany(ctx, bson.M{"role": models.RoleParticipant})
	if err != nil {
		return 0, fmt.Errorf("delete participants: %w", err)
	}
	return res.DeletedCount, nil
}

// ResetParticipantPairings bulk-resets every participant to the
// unpaired baseline before a regeneration (and on rollback).
func (s *Store) ResetParticipantPairings(ctx context.Context) error {
	_, err := s.users.UpdateMany(ctx,
		bson.M{"role": models.RoleParticipant},
		bson.M{"$set": bson.M{"is_paired": false, "paired_with": nil}},
	)
	if err != nil {
		return fmt.Errorf("reset pairings: %w", err)
	}
	return nil
}
