package repository

import (
	"context"
	"errors"

	"lingo-byte/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository implements domain.UserRepository over the users
// collection.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) domain.UserRepository {
	return &MongoUserRepository{col: db.Collection(usersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return domain.NewUsernameTakenError(user.Username)
	}
	return err
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCAS writes the full user document guarded by the version it was read
// at. The version is bumped on success so a concurrent writer loses the race
// instead of silently clobbering aggregates.
func (r *MongoUserRepository) UpdateCAS(ctx context.Context, user *domain.User) error {
	readVersion := user.Version
	user.Version = readVersion + 1

	res, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": user.ID, "version": readVersion},
		user,
	)
	if mongo.IsDuplicateKeyError(err) {
		user.Version = readVersion
		return domain.NewUsernameTakenError(user.Username)
	}
	if err != nil {
		user.Version = readVersion
		return err
	}
	if res.MatchedCount == 0 {
		user.Version = readVersion
		return domain.ErrVersionConflict
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
