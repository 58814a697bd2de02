package repository

import (
	"context"
	"errors"

	"lingo-byte/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSessionRepository implements domain.SessionRepository over the
// user_sessions collection.
type MongoSessionRepository struct {
	col *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) domain.SessionRepository {
	return &MongoSessionRepository{col: db.Collection(sessionsCollection)}
}

func (r *MongoSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.col.InsertOne(ctx, session)
	return err
}

func (r *MongoSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	err := r.col.FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewNotFoundError("session not found")
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *MongoSessionRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"token": token},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	return err
}

func (r *MongoSessionRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	return err
}

func (r *MongoSessionRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
