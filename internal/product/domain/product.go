// Package domain defines the core product domain entities and types.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anhminh10a2hoa/webshop/internal/errors"
)

// Product represents a catalog item.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Price       float64       `bson:"price"`
	Description string        `bson:"description"`
	Image       string        `bson:"image"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}

// Domain-specific errors for product operations.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")
)
