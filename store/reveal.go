package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const revealKey = "reveal_status"

type revealDoc struct {
	ID       string `bson:"_id"`
	Revealed bool   `bson:"revealed"`
}

// RevealStatus reports whether pairings may be disclosed. Missing
// document means not revealed.
func (s *Store) RevealStatus(ctx context.Context) (bool, error) {
	var doc revealDoc
	err := s.settings.FindOne(ctx, bson.M{"_id": revealKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read reveal status: %w", err)
	}
	return doc.Revealed, nil
}

// ToggleReveal flips the flag and returns the new value. Read and write
// are separate operations, not compare-and-swap; concurrent admin
// toggles can race, which the single-admin deployment accepts.
func (s *Store) ToggleReveal(ctx context.Context) (bool, error) {
	current, err := s.RevealStatus(ctx)
	if err != nil {
		return false, err
	}

	next := !current
	_, err = s.settings.UpdateOne(ctx,
		bson.M{"_id": revealKey},
		bson.M{"$set": bson.M{"revealed": next}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("write reveal status: %w", err)
	}
	return next, nil
}
