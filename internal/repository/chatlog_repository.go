package repository

import (
	"context"

	"lingo-byte/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoChatLogRepository implements domain.ChatLogRepository over the
// chat_logs collection. Transcripts are a convenience log; the chat endpoint
// itself is stateless.
type MongoChatLogRepository struct {
	col *mongo.Collection
}

func NewMongoChatLogRepository(db *mongo.Database) domain.ChatLogRepository {
	return &MongoChatLogRepository{col: db.Collection(chatLogsCollection)}
}

func (r *MongoChatLogRepository) Insert(ctx context.Context, log *domain.ChatLog) error {
	_, err := r.col.InsertOne(ctx, log)
	return err
}

func (r *MongoChatLogRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
