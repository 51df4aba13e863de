package usecase

import (
	"context"
	"time"

	"github.com/anhminh10a2hoa/webshop/internal/metrics"
	"github.com/anhminh10a2hoa/webshop/internal/order/domain"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// orderUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type orderUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewOrderUseCaseWithMetrics wraps an order UseCase with metrics recording.
func NewOrderUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &orderUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for order creation operations.
func (o *orderUseCaseWithMetrics) Create(
	ctx context.Context,
	requester *userDomain.User,
	input CreateOrderInput,
) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.Create(ctx, requester, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "orders", "create", status)
	o.metrics.RecordDuration(ctx, "orders", "create", time.Since(start), status)

	return order, err
}

// ListForRequester records metrics for order list operations.
func (o *orderUseCaseWithMetrics) ListForRequester(
	ctx context.Context,
	requester *userDomain.User,
	offset, limit int,
) ([]*domain.Order, error) {
	start := time.Now()
	orders, err := o.next.ListForRequester(ctx, requester, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "orders", "list", status)
	o.metrics.RecordDuration(ctx, "orders", "list", time.Since(start), status)

	return orders, err
}

// GetForRequester records metrics for order retrieval operations.
func (o *orderUseCaseWithMetrics) GetForRequester(
	ctx context.Context,
	requester *userDomain.User,
	id string,
) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.GetForRequester(ctx, requester, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "orders", "get", status)
	o.metrics.RecordDuration(ctx, "orders", "get", time.Since(start), status)

	return order, err
}
