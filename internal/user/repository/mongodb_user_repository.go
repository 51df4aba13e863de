// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/anhminh10a2hoa/webshop/internal/database"
	"github.com/anhminh10a2hoa/webshop/internal/user/domain"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
)

// MongoDBUserRepository handles user persistence for MongoDB.
type MongoDBUserRepository struct {
	collection *mongo.Collection
}

// NewMongoDBUserRepository creates a new MongoDBUserRepository.
func NewMongoDBUserRepository(db *mongo.Database) *MongoDBUserRepository {
	return &MongoDBUserRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// Create inserts a new user.
func (r *MongoDBUserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// The unique index on email turns a duplicate registration into a
		// duplicate-key error.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *MongoDBUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	var user domain.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *MongoDBUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// List retrieves users ordered by creation time.
func (r *MongoDBUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	users := []*domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode users")
	}

	return users, nil
}

// UpdateRole sets the role of a user and returns the updated document.
func (r *MongoDBUserRepository) UpdateRole(
	ctx context.Context,
	id bson.ObjectID,
	role domain.Role,
) (*domain.User, error) {
	update := bson.M{"$set": bson.M{
		"role":       role,
		"updated_at": time.Now().UTC(),
	}}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, findOptions).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to update user role")
	}

	return &user, nil
}

// Delete removes a user and returns the deleted document.
func (r *MongoDBUserRepository) Delete(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	var user domain.User

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to delete user")
	}

	return &user, nil
}
