package usecase

import (
	"context"
	"time"

	"github.com/anhminh10a2hoa/webshop/internal/metrics"
	"github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a user UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for user registration operations.
func (u *userUseCaseWithMetrics) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "register", status)
	u.metrics.RecordDuration(ctx, "users", "register", time.Since(start), status)

	return user, err
}

// List records metrics for user list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "list", status)
	u.metrics.RecordDuration(ctx, "users", "list", time.Since(start), status)

	return users, err
}

// Get records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "get", status)
	u.metrics.RecordDuration(ctx, "users", "get", time.Since(start), status)

	return user, err
}

// GetByEmail records metrics for email lookup operations.
func (u *userUseCaseWithMetrics) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByEmail(ctx, email)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "get_by_email", status)
	u.metrics.RecordDuration(ctx, "users", "get_by_email", time.Since(start), status)

	return user, err
}

// UpdateRole records metrics for role update operations.
func (u *userUseCaseWithMetrics) UpdateRole(
	ctx context.Context,
	requester *domain.User,
	id string,
	input UpdateUserRoleInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateRole(ctx, requester, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "update_role", status)
	u.metrics.RecordDuration(ctx, "users", "update_role", time.Since(start), status)

	return user, err
}

// Delete records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) Delete(
	ctx context.Context,
	requester *domain.User,
	id string,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Delete(ctx, requester, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "delete", status)
	u.metrics.RecordDuration(ctx, "users", "delete", time.Since(start), status)

	return user, err
}
