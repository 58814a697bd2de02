package repository

import (
	"context"
	"fmt"

	"lingo-byte/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. Five logical collections own all persisted state.
const (
	usersCollection    = "users"
	quizzesCollection  = "quizzes"
	sessionsCollection = "user_sessions"
	qaCollection       = "qa_entries"
	chatLogsCollection = "chat_logs"
)

// Connect opens a client against the document store and verifies
// connectivity.
func Connect(ctx context.Context, cfg config.StoreConfig) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}
	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the access paths rely on. Safe to call on
// every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users.username index: %w", err)
	}

	_, err = db.Collection(quizzesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("quizzes indexes: %w", err)
	}

	_, err = db.Collection(sessionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Expired sessions are also rejected at validation time; the
			// TTL sweep just keeps the collection small.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("sessions indexes: %w", err)
	}

	_, err = db.Collection(qaCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("qa_entries.user_id index: %w", err)
	}

	return nil
}
