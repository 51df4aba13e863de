// Package dto contains data transfer objects for order HTTP responses.
package dto

import (
	"time"

	"github.com/anhminh10a2hoa/webshop/internal/order/domain"
)

// ProductSnapshotResponse represents an ordered product as captured at
// purchase time.
type ProductSnapshotResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// OrderItemResponse represents a single order line.
type OrderItemResponse struct {
	Product  ProductSnapshotResponse `json:"product"`
	Quantity int                     `json:"quantity"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID         string              `json:"_id"`
	CustomerID string              `json:"customerId"`
	Items      []OrderItemResponse `json:"items"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain order to an OrderResponse.
func ToOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			Product: ProductSnapshotResponse{
				ID:          item.Product.ID.Hex(),
				Name:        item.Product.Name,
				Price:       item.Product.Price,
				Description: item.Product.Description,
			},
			Quantity: item.Quantity,
		})
	}

	return OrderResponse{
		ID:         order.ID.Hex(),
		CustomerID: order.CustomerID.Hex(),
		Items:      items,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders.
func ToOrderResponses(orders []*domain.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ToOrderResponse(order))
	}
	return responses
}
