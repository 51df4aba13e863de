// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	"github.com/anhminh10a2hoa/webshop/internal/user/domain"
	appValidation "github.com/anhminh10a2hoa/webshop/internal/validation"
)

// RegisterUserInput contains the input data for user registration.
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRoleInput contains the input data for a role update.
// The role is the only mutable field of a user record.
type UpdateUserRoleInput struct {
	Role string `json:"role"`
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateRole(ctx context.Context, requester *domain.User, id string, input UpdateUserRoleInput) (*domain.User, error)
	Delete(ctx context.Context, requester *domain.User, id string) (*domain.User, error)
}

// UserRepository interface defines user repository operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id bson.ObjectID, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id bson.ObjectID) (*domain.User, error)
}

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	userRepo          UserRepository
	passwordHasher    *pwdhash.PasswordHasher
	passwordMinLength int
}

// NewUserUseCase creates a new UserUseCase. The minimum password length is a
// configuration constant enforced before any persistence happens.
func NewUserUseCase(userRepo UserRepository, passwordMinLength int) (UseCase, error) {
	// Initialize password hasher with interactive policy for user passwords
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		userRepo:          userRepo,
		passwordHasher:    hasher,
		passwordMinLength: passwordMinLength,
	}, nil
}

// validateRegisterUserInput validates the registration input using jellydator/validation.
// All field rules run so the response reports every violation, not just the first.
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 50).Error("name must be between 1 and 50 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(uc.passwordMinLength, 0).Error(
				fmt.Sprintf("password must be at least %d characters", uc.passwordMinLength),
			),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register registers a new user. New users always get the customer role.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	// Validate input
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	// Hash the password
	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Password: hashedPassword,
		Role:     domain.RoleCustomer,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List retrieves users.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// Get retrieves a user by the hex ID taken from the request path.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(ctx, objectID)
}

// GetByEmail retrieves a user by email.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

// UpdateRole changes the role of another user. Updating the own record is
// rejected even for admins, before the role value is inspected.
func (uc *UserUseCase) UpdateRole(
	ctx context.Context,
	requester *domain.User,
	id string,
	input UpdateUserRoleInput,
) (*domain.User, error) {
	if requester != nil && requester.ID.Hex() == id {
		return nil, domain.ErrSelfUpdate
	}

	role := domain.Role(input.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	return uc.userRepo.UpdateRole(ctx, objectID, role)
}

// Delete removes another user and returns the deleted record.
// Deleting the own record is rejected even for admins.
func (uc *UserUseCase) Delete(ctx context.Context, requester *domain.User, id string) (*domain.User, error) {
	if requester != nil && requester.ID.Hex() == id {
		return nil, domain.ErrSelfDelete
	}

	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	return uc.userRepo.Delete(ctx, objectID)
}

// parseObjectID converts a path parameter to an ObjectID. The router already
// guarantees the ID shape; a value that still fails ObjectID decoding (e.g.
// fewer than 24 characters) cannot name an existing document, so it maps to
// not-found rather than a validation error.
func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.ErrUserNotFound
	}
	return objectID, nil
}
