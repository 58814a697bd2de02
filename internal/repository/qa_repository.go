package repository

import (
	"context"

	"lingo-byte/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoQARepository implements domain.QARepository over the qa_entries
// collection. Entries are append-only.
type MongoQARepository struct {
	col *mongo.Collection
}

func NewMongoQARepository(db *mongo.Database) domain.QARepository {
	return &MongoQARepository{col: db.Collection(qaCollection)}
}

func (r *MongoQARepository) Insert(ctx context.Context, entry *domain.QAEntry) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *MongoQARepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
