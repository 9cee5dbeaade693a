package models

import "time"

// Pairing links a santa to the person they give to. Pairings are only
// ever replaced wholesale by a regeneration, never edited in place.
type Pairing struct {
	ID          string    `bson:"_id" json:"id"`
	SantaID     string    `bson:"santa_id" json:"santa_id"`
	RecipientID string    `bson:"recipient_id" json:"recipient_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
