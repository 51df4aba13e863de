package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/allisson/go-pwdhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// MockUserReader is a mock implementation of UserReader
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// hashPassword produces a stored hash the authenticator can verify against.
func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	require.NoError(t, err)
	hash, err := hasher.Hash([]byte(password))
	require.NoError(t, err)
	return hash
}

func TestBasicAuthenticator_Authenticate_Success(t *testing.T) {
	users := &MockUserReader{}
	authenticator, err := NewBasicAuthenticator(users)
	require.NoError(t, err)

	ctx := context.Background()
	storedUser := &userDomain.User{
		ID:       bson.NewObjectID(),
		Email:    "jane@example.com",
		Password: hashPassword(t, "correct-password"),
		Role:     userDomain.RoleCustomer,
	}

	users.On("GetByEmail", ctx, "jane@example.com").Return(storedUser, nil)

	user, err := authenticator.Authenticate(ctx, "jane@example.com", "correct-password")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, storedUser.ID, user.ID)

	users.AssertExpectations(t)
}

func TestBasicAuthenticator_Authenticate_WrongPassword(t *testing.T) {
	users := &MockUserReader{}
	authenticator, err := NewBasicAuthenticator(users)
	require.NoError(t, err)

	ctx := context.Background()
	storedUser := &userDomain.User{
		ID:       bson.NewObjectID(),
		Email:    "jane@example.com",
		Password: hashPassword(t, "correct-password"),
	}

	users.On("GetByEmail", ctx, "jane@example.com").Return(storedUser, nil)

	user, err := authenticator.Authenticate(ctx, "jane@example.com", "wrong-password")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	users.AssertExpectations(t)
}

func TestBasicAuthenticator_Authenticate_UnknownEmail(t *testing.T) {
	users := &MockUserReader{}
	authenticator, err := NewBasicAuthenticator(users)
	require.NoError(t, err)

	ctx := context.Background()

	users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, userDomain.ErrUserNotFound)

	// Unknown email reads exactly like a wrong password.
	user, err := authenticator.Authenticate(ctx, "nobody@example.com", "whatever-password")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	users.AssertExpectations(t)
}

func TestBasicAuthenticator_Authenticate_StoreFailure(t *testing.T) {
	users := &MockUserReader{}
	authenticator, err := NewBasicAuthenticator(users)
	require.NoError(t, err)

	ctx := context.Background()
	storeErr := errors.New("connection refused")

	users.On("GetByEmail", ctx, "jane@example.com").Return(nil, storeErr)

	// A store failure must not be mistaken for bad credentials.
	user, err := authenticator.Authenticate(ctx, "jane@example.com", "correct-password")

	assert.Nil(t, user)
	assert.False(t, errors.Is(err, apperrors.ErrUnauthorized))
	assert.Equal(t, storeErr, err)

	users.AssertExpectations(t)
}
