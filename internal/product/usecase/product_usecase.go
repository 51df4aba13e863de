// Package usecase implements the product business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	"github.com/anhminh10a2hoa/webshop/internal/product/domain"
	appValidation "github.com/anhminh10a2hoa/webshop/internal/validation"
)

// CreateProductInput contains the input data for product creation.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// UpdateProductInput contains the input data for a partial product update.
// Nil fields keep their stored values.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

// UseCase defines the interface for product business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}

// ProductRepository interface defines product repository operations.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, id bson.ObjectID, fields map[string]any) (*domain.Product, error)
	Delete(ctx context.Context, id bson.ObjectID) (*domain.Product, error)
}

// ProductUseCase handles product-related business logic.
type ProductUseCase struct {
	productRepo ProductRepository
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(productRepo ProductRepository) UseCase {
	return &ProductUseCase{productRepo: productRepo}
}

func validateCreateProductInput(input CreateProductInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("name must be between 1 and 100 characters"),
		),
		validation.Field(&input.Price,
			validation.By(appValidation.PositivePrice),
		),
		validation.Field(&input.Description,
			validation.Required.Error("description is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Image,
			validation.Required.Error("image is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateUpdateProductInput(input UpdateProductInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			appValidation.NotBlank,
			validation.Length(1, 100).Error("name must be between 1 and 100 characters"),
		),
		validation.Field(&input.Price,
			validation.By(appValidation.PositivePrice),
		),
		validation.Field(&input.Description, appValidation.NotBlank),
		validation.Field(&input.Image, appValidation.NotBlank),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new product.
func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := validateCreateProductInput(input); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// List retrieves products.
func (uc *ProductUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, offset, limit)
}

// Get retrieves a product by the hex ID taken from the request path.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return uc.productRepo.GetByID(ctx, objectID)
}

// Update applies a partial update to a product. Only the provided fields
// change; at least one field must be provided.
func (uc *ProductUseCase) Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	if err := validateUpdateProductInput(input); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if len(fields) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "no fields to update")
	}

	return uc.productRepo.Update(ctx, objectID, fields)
}

// Delete removes a product and returns the deleted record.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return uc.productRepo.Delete(ctx, objectID)
}

// parseObjectID converts a path parameter to an ObjectID. A value that fails
// ObjectID decoding cannot name an existing document, so it maps to not-found.
func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.ErrProductNotFound
	}
	return objectID, nil
}
