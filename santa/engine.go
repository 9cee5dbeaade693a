// Package santa generates the giver/recipient pairings for the game.
package santa

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
)

// ErrTooFewParticipants is returned when fewer than two participants
// exist. The check runs before anything is deleted, so a bad call
// leaves existing pairings alone.
var ErrTooFewParticipants = errors.New("need at least 2 participants to create pairs")

// PairingError wraps the failure that aborted a regeneration after the
// compensating rollback has run.
type PairingError struct {
	Err error
}

func (e *PairingError) Error() string {
	return fmt.Sprintf("error creating pairing: %v", e.Err)
}

func (e *PairingError) Unwrap() error { return e.Err }

// Pair is one generated assignment, by name, for admin display.
type Pair struct {
	SantaName     string `json:"santa_name"`
	RecipientName string `json:"recipient_name"`
}

// Store is the slice of the document store the engine writes through.
type Store interface {
	ListParticipants(ctx context.Context) ([]models.User, error)
	ResetParticipantPairings(ctx context.Context) error
	DeleteAllPairings(ctx context.Context) error
	InsertPairing(ctx context.Context, santaID, recipientID string) error
	SetPairing(ctx context.Context, userID string, pairedWith *string) error
}

// Engine produces a fresh set of pairings, replacing any existing ones.
type Engine struct {
	store Store
}

// NewEngine returns an Engine writing through the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Regenerate deletes all existing pairings and produces new ones.
//
// The participants are shuffled and arranged in a single cycle: position
// i gives to position (i+1) mod n. For n >= 2 that construction has no
// fixed points and makes everyone a santa exactly once and a recipient
// exactly once. Only cyclic derangements are reachable, which the game
// trades for an algorithm that always terminates.
//
// The store offers no multi-document transaction, so a failure while
// persisting triggers a compensating rollback: delete every pairing row
// and reset every participant to unpaired, then report the original
// failure.
func (e *Engine) Regenerate(ctx context.Context) ([]Pair, error) {
	participants, err := e.store.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	if len(participants) < 2 {
		return nil, ErrTooFewParticipants
	}

	// Reset to the safe unpaired baseline before writing anything new.
	if err := e.store.DeleteAllPairings(ctx); err != nil {
		return nil, err
	}
	if err := e.store.ResetParticipantPairings(ctx); err != nil {
		return nil, err
	}

	rand.Shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})

	pairs := make([]Pair, 0, len(participants))
	for i := range participants {
		santa := participants[i]
		recipient := participants[(i+1)%len(participants)]

		if err := e.persistPair(ctx, santa, recipient); err != nil {
			e.rollback(ctx)
			return nil, &PairingError{Err: err}
		}

		pairs = append(pairs, Pair{
			SantaName:     santa.FullName,
			RecipientName: recipient.FullName,
		})
	}

	return pairs, nil
}

func (e *Engine) persistPair(ctx context.Context, santa, recipient models.User) error {
	if err := e.store.InsertPairing(ctx, santa.ID, recipient.ID); err != nil {
		return err
	}
	// Both sides record their counterpart. Around the cycle later pairs
	// overwrite earlier ones, so after the loop every participant points
	// at their recipient except the shuffle-first one, whose final write
	// comes from the closing pair and names their santa.
	if err := e.store.SetPairing(ctx, santa.ID, &recipient.ID); err != nil {
		return err
	}
	if err := e.store.SetPairing(ctx, recipient.ID, &santa.ID); err != nil {
		return err
	}
	return nil
}

func (e *Engine) rollback(ctx context.Context) {
	// Best effort: the rollback target is the all-unpaired baseline, so
	// a failure here only leaves state a rerun will clean up anyway.
	_ = e.store.DeleteAllPairings(ctx)
	_ = e.store.ResetParticipantPairings(ctx)
}
