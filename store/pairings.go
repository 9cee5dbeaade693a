package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
)

// InsertPairing writes one santa→recipient row.
func (s *Store) InsertPairing(ctx context.Context, santaID, recipientID string) error {
	pairing := models.Pairing{
		ID:          uuid.NewString(),
		SantaID:     santaID,
		RecipientID: recipientID,
		CreatedAt:   now(),
	}
	if _, err := s.pairings.InsertOne(ctx, pairing); err != nil {
		return fmt.Errorf("insert pairing: %w", err)
	}
	return nil
}

// ListPairings returns every pairing row.
func (s *Store) ListPairings(ctx context.Context) ([]models.Pairing, error) {
	cursor, err := s.pairings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list pairings: %w", err)
	}
	defer cursor.Close(ctx)

	pairings := []models.Pairing{}
	if err := cursor.All(ctx, &pairings); err != nil {
		return nil, fmt.Errorf("decode pairings: %w", err)
	}
	return pairings, nil
}

// SantaFor returns the user who gives to userID, or ErrNotFound when no
// pairing names them as recipient.
func (s *Store) SantaFor(ctx context.Context, userID string) (*models.User, error) {
	var pairing models.Pairing
	err := s.pairings.FindOne(ctx, bson.M{"recipient_id": userID}).Decode(&pairing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pairing: %w", err)
	}
	return s.GetByID(ctx, pairing.SantaID)
}

// DeleteAllPairings wipes the pairing collection. Pairings are always
// replaced wholesale, so this runs before every regeneration and on
// rollback.
func (s *Store) DeleteAllPairings(ctx context.Context) error {
	if _, err := s.pairings.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete pairings: %w", err)
	}
	return nil
}
