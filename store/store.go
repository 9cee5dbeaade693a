// Package store wraps the MongoDB collections behind a single handle.
// The handle is constructed once at startup and injected into every
// controller; nothing in this codebase touches a global client.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/config"
)

// Store is the document-store handle shared by all components. All
// state lives in MongoDB; the Store itself holds no mutable state
// between requests.
type Store struct {
	client   *mongo.Client
	users    *mongo.Collection
	tasks    *mongo.Collection
	pairings *mongo.Collection
	settings *mongo.Collection
}

// Open connects to MongoDB, verifies the connection and creates the
// indexes the data model relies on (unique email, assigned_to lookup).
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	s := &Store{
		client:   client,
		users:    db.Collection("users"),
		tasks:    db.Collection("tasks"),
		pairings: db.Collection("pairings"),
		settings: db.Collection("settings"),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}

	_, err = s.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "assigned_to", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create assigned_to index: %w", err)
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
