// Package domain defines the core order domain entities and types.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anhminh10a2hoa/webshop/internal/errors"
)

// ProductSnapshot captures the product data at the time the order was placed.
// Later catalog changes never mutate historical orders.
type ProductSnapshot struct {
	ID          bson.ObjectID `bson:"_id"`
	Name        string        `bson:"name"`
	Price       float64       `bson:"price"`
	Description string        `bson:"description"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Product  ProductSnapshot `bson:"product"`
	Quantity int             `bson:"quantity"`
}

// Order represents a placed order owned by a customer.
type Order struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	CustomerID bson.ObjectID `bson:"customerId"`
	Items      []OrderItem   `bson:"items"`
	CreatedAt  time.Time     `bson:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at"`
}

// Total returns the order total across all items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Domain-specific errors for order operations.
var (
	// ErrOrderNotFound indicates the requested order does not exist or is not
	// visible to the requester.
	ErrOrderNotFound = errors.Wrap(errors.ErrNotFound, "order not found")

	// ErrUnknownProduct indicates an order line references a product that does
	// not exist in the catalog.
	ErrUnknownProduct = errors.Wrap(errors.ErrInvalidInput, "order references an unknown product")
)
