// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anhminh10a2hoa/webshop/internal/errors"
)

// Role is the closed set of roles a user can hold.
type Role string

// Valid roles. Registration always produces a customer; only an admin can
// promote another user through a role update.
const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

// User represents a user in the system. Password holds the argon2id hash,
// never the plain text, and is excluded from every API response by the DTO
// layer.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	Role      Role          `bson:"role"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "email is already in use")

	// ErrInvalidRole indicates the role field is missing or not a known role.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "role is missing or invalid")

	// ErrSelfUpdate indicates a user attempted to update their own record.
	ErrSelfUpdate = errors.Wrap(errors.ErrInvalidInput, "updating own data is not allowed")

	// ErrSelfDelete indicates a user attempted to delete their own record.
	ErrSelfDelete = errors.Wrap(errors.ErrInvalidInput, "deleting own data is not allowed")
)
