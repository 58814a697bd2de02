package repository

import (
	"context"

	"lingo-byte/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQuizRepository implements domain.QuizRepository over the quizzes
// collection.
type MongoQuizRepository struct {
	col *mongo.Collection
}

func NewMongoQuizRepository(db *mongo.Database) domain.QuizRepository {
	return &MongoQuizRepository{col: db.Collection(quizzesCollection)}
}

func (r *MongoQuizRepository) Insert(ctx context.Context, quiz *domain.Quiz) error {
	_, err := r.col.InsertOne(ctx, quiz)
	return err
}

func (r *MongoQuizRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoQuizRepository) ListByUser(ctx context.Context, userID string) ([]domain.Quiz, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var quizzes []domain.Quiz
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *MongoQuizRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Quiz, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var quizzes []domain.Quiz
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *MongoQuizRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *MongoQuizRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
