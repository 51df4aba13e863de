// Package usecase implements the order business logic.
package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anhminh10a2hoa/webshop/internal/order/domain"
	productDomain "github.com/anhminh10a2hoa/webshop/internal/product/domain"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
	appValidation "github.com/anhminh10a2hoa/webshop/internal/validation"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
)

// OrderItemProduct is the product reference embedded in an order line. Only
// the ID is used to resolve the catalog product; the remaining fields let
// clients post a product document back as-is.
type OrderItemProduct struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// OrderItemInput is one line of an order request.
type OrderItemInput struct {
	Product  OrderItemProduct `json:"product"`
	Quantity int              `json:"quantity"`
}

// CreateOrderInput contains the input data for order creation.
type CreateOrderInput struct {
	Items []OrderItemInput `json:"items"`
}

// UseCase defines the interface for order business logic operations.
type UseCase interface {
	Create(ctx context.Context, requester *userDomain.User, input CreateOrderInput) (*domain.Order, error)
	ListForRequester(ctx context.Context, requester *userDomain.User, offset, limit int) ([]*domain.Order, error)
	GetForRequester(ctx context.Context, requester *userDomain.User, id string) (*domain.Order, error)
}

// OrderRepository interface defines order repository operations.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID bson.ObjectID, offset, limit int) ([]*domain.Order, error)
}

// ProductReader resolves catalog products referenced by order lines.
type ProductReader interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*productDomain.Product, error)
}

// OrderUseCase handles order-related business logic.
type OrderUseCase struct {
	orderRepo OrderRepository
	products  ProductReader
}

// NewOrderUseCase creates a new OrderUseCase.
func NewOrderUseCase(orderRepo OrderRepository, products ProductReader) UseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		products:  products,
	}
}

func validateCreateOrderInput(input CreateOrderInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Items,
			validation.Required.Error("items are required"),
			validation.Each(validation.By(validateOrderItem)),
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateOrderItem(value interface{}) error {
	item, ok := value.(OrderItemInput)
	if !ok {
		return validation.NewError("validation_order_item", "must be an order item")
	}
	return validation.ValidateStruct(&item,
		validation.Field(&item.Product, validation.By(validateOrderItemProduct)),
		validation.Field(&item.Quantity,
			validation.Required.Error("quantity must be at least 1"),
			validation.Min(1).Error("quantity must be at least 1"),
		),
	)
}

func validateOrderItemProduct(value interface{}) error {
	product, ok := value.(OrderItemProduct)
	if !ok {
		return validation.NewError("validation_order_item_product", "must be a product reference")
	}
	return validation.ValidateStruct(&product,
		validation.Field(&product.ID, validation.Required.Error("product _id is required")),
	)
}

// Create places a new order owned by the requester. Each line resolves its
// product from the catalog and stores a snapshot of it; the catalog copy is
// authoritative, product fields posted by the client are not trusted.
func (uc *OrderUseCase) Create(
	ctx context.Context,
	requester *userDomain.User,
	input CreateOrderInput,
) (*domain.Order, error) {
	if requester == nil {
		return nil, apperrors.ErrUnauthorized
	}

	if err := validateCreateOrderInput(input); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		productID, err := bson.ObjectIDFromHex(line.Product.ID)
		if err != nil {
			return nil, domain.ErrUnknownProduct
		}

		product, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				return nil, domain.ErrUnknownProduct
			}
			return nil, err
		}

		items = append(items, domain.OrderItem{
			Product: domain.ProductSnapshot{
				ID:          product.ID,
				Name:        product.Name,
				Price:       product.Price,
				Description: product.Description,
			},
			Quantity: line.Quantity,
		})
	}

	order := &domain.Order{
		CustomerID: requester.ID,
		Items:      items,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListForRequester returns all orders for an admin and only the requester's
// own orders for a customer.
func (uc *OrderUseCase) ListForRequester(
	ctx context.Context,
	requester *userDomain.User,
	offset, limit int,
) ([]*domain.Order, error) {
	if requester == nil {
		return nil, apperrors.ErrUnauthorized
	}

	if requester.IsAdmin() {
		return uc.orderRepo.List(ctx, offset, limit)
	}
	return uc.orderRepo.ListByCustomer(ctx, requester.ID, offset, limit)
}

// GetForRequester retrieves an order by ID. A customer can only see their own
// orders; another customer's order reads as not found, never as forbidden, so
// the response does not leak which order IDs exist.
func (uc *OrderUseCase) GetForRequester(
	ctx context.Context,
	requester *userDomain.User,
	id string,
) (*domain.Order, error) {
	if requester == nil {
		return nil, apperrors.ErrUnauthorized
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	order, err := uc.orderRepo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && order.CustomerID != requester.ID {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}
