package models

import "time"

// Roles a user record can carry.
const (
	RoleAdmin       = "admin"
	RoleParticipant = "participant"
)

// User is a stored account. IDs are opaque random strings; never parse them.
// Pairing fields are only ever set on participants.
type User struct {
	ID                 string    `bson:"_id" json:"id"`
	FullName           string    `bson:"full_name" json:"full_name"`
	Email              string    `bson:"email" json:"email"`
	PasswordHash       string    `bson:"password_hash" json:"-"` // hashed password; omit from JSON output
	Role               string    `bson:"role" json:"role"`
	IsPaired           bool      `bson:"is_paired,omitempty" json:"-"`
	PairedWith         *string   `bson:"paired_with,omitempty" json:"-"`
	InitialPasswordSet bool      `bson:"initial_password_set" json:"-"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
