package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	"github.com/anhminh10a2hoa/webshop/internal/product/domain"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	if args.Error(0) == nil {
		product.ID = bson.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(
	ctx context.Context,
	id bson.ObjectID,
	fields map[string]any,
) (*domain.Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func TestProductUseCase_Create_Success(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	input := CreateProductInput{
		Name:        "Coffee Mug",
		Price:       9.99,
		Description: "A sturdy ceramic mug",
		Image:       "https://example.com/mug.jpg",
	}

	productRepo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := useCase.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, product)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, input.Price, product.Price)

	productRepo.AssertExpectations(t)
}

func TestProductUseCase_Create_InvalidPrice(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()

	for _, price := range []float64{0, -5.50} {
		input := CreateProductInput{
			Name:        "Coffee Mug",
			Price:       price,
			Description: "A sturdy ceramic mug",
			Image:       "https://example.com/mug.jpg",
		}

		product, err := useCase.Create(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}

	productRepo.AssertNotCalled(t, "Create")
}

func TestProductUseCase_Create_MissingFields(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()

	product, err := useCase.Create(ctx, CreateProductInput{Name: "Coffee Mug", Price: 9.99})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	productRepo.AssertNotCalled(t, "Create")
}

func TestProductUseCase_Get_Success(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	id := bson.NewObjectID()
	expectedProduct := &domain.Product{ID: id, Name: "Coffee Mug", Price: 9.99}

	productRepo.On("GetByID", ctx, id).Return(expectedProduct, nil)

	product, err := useCase.Get(ctx, id.Hex())

	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	productRepo.AssertExpectations(t)
}

func TestProductUseCase_Get_MalformedID(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()

	product, err := useCase.Get(ctx, "abc123def")

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	productRepo.AssertNotCalled(t, "GetByID")
}

func TestProductUseCase_Update_PartialFields(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	id := bson.NewObjectID()
	newPrice := 14.99
	updatedProduct := &domain.Product{ID: id, Name: "Coffee Mug", Price: newPrice}

	productRepo.On("Update", ctx, id, map[string]any{"price": newPrice}).Return(updatedProduct, nil)

	product, err := useCase.Update(ctx, id.Hex(), UpdateProductInput{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, newPrice, product.Price)

	productRepo.AssertExpectations(t)
}

func TestProductUseCase_Update_InvalidPrice(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	id := bson.NewObjectID()
	badPrice := -1.0

	product, err := useCase.Update(ctx, id.Hex(), UpdateProductInput{Price: &badPrice})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	productRepo.AssertNotCalled(t, "Update")
}

func TestProductUseCase_Update_NoFields(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	id := bson.NewObjectID()

	product, err := useCase.Update(ctx, id.Hex(), UpdateProductInput{})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	productRepo.AssertNotCalled(t, "Update")
}

func TestProductUseCase_Delete_Success(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	id := bson.NewObjectID()
	deletedProduct := &domain.Product{ID: id, Name: "Coffee Mug"}

	productRepo.On("Delete", ctx, id).Return(deletedProduct, nil)

	product, err := useCase.Delete(ctx, id.Hex())

	assert.NoError(t, err)
	assert.Equal(t, deletedProduct, product)

	productRepo.AssertExpectations(t)
}

func TestProductUseCase_Delete_NotFound(t *testing.T) {
	productRepo := &MockProductRepository{}
	useCase := NewProductUseCase(productRepo)

	ctx := context.Background()
	id := bson.NewObjectID()

	productRepo.On("Delete", ctx, id).Return(nil, domain.ErrProductNotFound)

	product, err := useCase.Delete(ctx, id.Hex())

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	productRepo.AssertExpectations(t)
}
