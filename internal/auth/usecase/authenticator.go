// Package usecase implements authentication business logic.
package usecase

import (
	"context"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// Authenticator resolves Basic credentials to a verified user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*userDomain.User, error)
}

// UserReader is the subset of the user repository needed for authentication.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// BasicAuthenticator verifies email/password pairs against stored argon2id hashes.
type BasicAuthenticator struct {
	users  UserReader
	hasher *pwdhash.PasswordHasher
}

// NewBasicAuthenticator creates a new BasicAuthenticator.
func NewBasicAuthenticator(users UserReader) (*BasicAuthenticator, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &BasicAuthenticator{
		users:  users,
		hasher: hasher,
	}, nil
}

// Authenticate looks up the user by email and verifies the password against
// the stored hash (the comparison inside the hasher is constant-time).
// Unknown email and wrong password both map to ErrUnauthorized. A store
// failure keeps its own error so it surfaces as a server error, never as a
// credential rejection. The password is never logged.
func (a *BasicAuthenticator) Authenticate(
	ctx context.Context,
	email, password string,
) (*userDomain.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	ok, err := a.hasher.Verify([]byte(password), user.Password)
	if err != nil || !ok {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
