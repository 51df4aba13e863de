// Package repository provides data persistence implementations for order entities.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/anhminh10a2hoa/webshop/internal/database"
	"github.com/anhminh10a2hoa/webshop/internal/order/domain"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
)

// MongoDBOrderRepository handles order persistence for MongoDB.
type MongoDBOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoDBOrderRepository creates a new MongoDBOrderRepository.
func NewMongoDBOrderRepository(db *mongo.Database) *MongoDBOrderRepository {
	return &MongoDBOrderRepository{
		collection: db.Collection(database.OrdersCollection),
	}
}

// Create inserts a new order.
func (r *MongoDBOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.ID.IsZero() {
		order.ID = bson.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}
	return nil
}

// GetByID retrieves an order by ID.
func (r *MongoDBOrderRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Order, error) {
	var order domain.Order

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order by id")
	}

	return &order, nil
}

// List retrieves all orders ordered by creation time.
func (r *MongoDBOrderRepository) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{}, offset, limit)
}

// ListByCustomer retrieves the orders owned by a customer.
func (r *MongoDBOrderRepository) ListByCustomer(
	ctx context.Context,
	customerID bson.ObjectID,
	offset, limit int,
) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"customerId": customerID}, offset, limit)
}

func (r *MongoDBOrderRepository) find(
	ctx context.Context,
	filter bson.M,
	offset, limit int,
) ([]*domain.Order, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer cursor.Close(ctx)

	orders := []*domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode orders")
	}

	return orders, nil
}
