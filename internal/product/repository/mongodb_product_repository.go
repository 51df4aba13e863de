// Package repository provides data persistence implementations for product entities.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/anhminh10a2hoa/webshop/internal/database"
	"github.com/anhminh10a2hoa/webshop/internal/product/domain"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
)

// MongoDBProductRepository handles product persistence for MongoDB.
type MongoDBProductRepository struct {
	collection *mongo.Collection
}

// NewMongoDBProductRepository creates a new MongoDBProductRepository.
func NewMongoDBProductRepository(db *mongo.Database) *MongoDBProductRepository {
	return &MongoDBProductRepository{
		collection: db.Collection(database.ProductsCollection),
	}
}

// Create inserts a new product.
func (r *MongoDBProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.ID.IsZero() {
		product.ID = bson.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// GetByID retrieves a product by ID.
func (r *MongoDBProductRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	var product domain.Product

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	return &product, nil
}

// List retrieves products ordered by creation time.
func (r *MongoDBProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer cursor.Close(ctx)

	products := []*domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode products")
	}

	return products, nil
}

// Update applies the given field set to a product and returns the updated
// document. Fields not present in the set keep their stored values.
func (r *MongoDBProductRepository) Update(
	ctx context.Context,
	id bson.ObjectID,
	fields map[string]any,
) (*domain.Product, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product domain.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, findOptions).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to update product")
	}

	return &product, nil
}

// Delete removes a product and returns the deleted document.
func (r *MongoDBProductRepository) Delete(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	var product domain.Product

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to delete product")
	}

	return &product, nil
}
