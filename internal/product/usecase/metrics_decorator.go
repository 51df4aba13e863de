package usecase

import (
	"context"
	"time"

	"github.com/anhminh10a2hoa/webshop/internal/metrics"
	"github.com/anhminh10a2hoa/webshop/internal/product/domain"
)

// productUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a product UseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for product creation operations.
func (p *productUseCaseWithMetrics) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", "create", status)
	p.metrics.RecordDuration(ctx, "products", "create", time.Since(start), status)

	return product, err
}

// List records metrics for product list operations.
func (p *productUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", "list", status)
	p.metrics.RecordDuration(ctx, "products", "list", time.Since(start), status)

	return products, err
}

// Get records metrics for product retrieval operations.
func (p *productUseCaseWithMetrics) Get(ctx context.Context, id string) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Get(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", "get", status)
	p.metrics.RecordDuration(ctx, "products", "get", time.Since(start), status)

	return product, err
}

// Update records metrics for product update operations.
func (p *productUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	input UpdateProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Update(ctx, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", "update", status)
	p.metrics.RecordDuration(ctx, "products", "update", time.Since(start), status)

	return product, err
}

// Delete records metrics for product deletion operations.
func (p *productUseCaseWithMetrics) Delete(ctx context.Context, id string) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Delete(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", "delete", status)
	p.metrics.RecordDuration(ctx, "products", "delete", time.Since(start), status)

	return product, err
}
