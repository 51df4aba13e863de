package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anhminh10a2hoa/webshop/internal/metrics"
	"github.com/anhminh10a2hoa/webshop/internal/product/domain"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestNewProductUseCaseWithMetrics(t *testing.T) {
	base := NewProductUseCase(&MockProductRepository{})

	decorator := NewProductUseCaseWithMetrics(base, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*UseCase)(nil), decorator)
}

func TestProductMetricsDecorator_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success records success metrics", func(t *testing.T) {
		productRepo := &MockProductRepository{}
		base := NewProductUseCase(productRepo)

		mockMetrics := &mockBusinessMetrics{}
		productRepo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)
		mockMetrics.On("RecordOperation", ctx, "products", "create", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "create", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewProductUseCaseWithMetrics(base, mockMetrics)
		product, err := decorator.Create(ctx, CreateProductInput{
			Name:        "Coffee Mug",
			Price:       9.99,
			Description: "A sturdy ceramic mug",
			Image:       "https://example.com/mug.png",
		})

		assert.NoError(t, err)
		assert.NotNil(t, product)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("error records error metrics", func(t *testing.T) {
		productRepo := &MockProductRepository{}
		base := NewProductUseCase(productRepo)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "products", "create", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "create", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewProductUseCaseWithMetrics(base, mockMetrics)
		product, err := decorator.Create(ctx, CreateProductInput{})

		assert.Error(t, err)
		assert.Nil(t, product)
		mockMetrics.AssertExpectations(t)
	})
}

func TestProductMetricsDecorator_Get(t *testing.T) {
	ctx := context.Background()

	productRepo := &MockProductRepository{}
	base := NewProductUseCase(productRepo)

	expected := &domain.Product{Name: "Coffee Mug", Price: 9.99}
	productRepo.On("GetByID", ctx, mock.Anything).Return(expected, nil)

	mockMetrics := &mockBusinessMetrics{}
	mockMetrics.On("RecordOperation", ctx, "products", "get", "success").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "products", "get", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewProductUseCaseWithMetrics(base, mockMetrics)
	product, err := decorator.Get(ctx, "0123456789abcdef01234567")

	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockMetrics.AssertExpectations(t)
}
