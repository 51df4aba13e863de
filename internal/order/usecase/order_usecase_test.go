package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/goleak"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	"github.com/anhminh10a2hoa/webshop/internal/order/domain"
	productDomain "github.com/anhminh10a2hoa/webshop/internal/product/domain"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// TestMain verifies no goroutines leak from the use case under test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil {
		order.ID = bson.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(
	ctx context.Context,
	customerID bson.ObjectID,
	offset, limit int,
) ([]*domain.Order, error) {
	args := m.Called(ctx, customerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

// MockProductReader is a mock implementation of ProductReader
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) GetByID(ctx context.Context, id bson.ObjectID) (*productDomain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

func customer() *userDomain.User {
	return &userDomain.User{ID: bson.NewObjectID(), Role: userDomain.RoleCustomer}
}

func admin() *userDomain.User {
	return &userDomain.User{ID: bson.NewObjectID(), Role: userDomain.RoleAdmin}
}

func TestOrderUseCase_Create_Success(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	requester := customer()
	product := &productDomain.Product{
		ID:          bson.NewObjectID(),
		Name:        "Coffee Mug",
		Price:       9.99,
		Description: "A sturdy ceramic mug",
	}

	products.On("GetByID", ctx, product.ID).Return(product, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := useCase.Create(ctx, requester, CreateOrderInput{
		Items: []OrderItemInput{{Product: OrderItemProduct{ID: product.ID.Hex()}, Quantity: 3}},
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, requester.ID, order.CustomerID)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, product.Name, order.Items[0].Product.Name)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.InDelta(t, 29.97, order.Total(), 0.001)

	orderRepo.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestOrderUseCase_Create_EmbeddedProductBody(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	requester := customer()
	product := &productDomain.Product{
		ID:          bson.NewObjectID(),
		Name:        "Coffee Mug",
		Price:       9.99,
		Description: "A sturdy ceramic mug",
	}

	// Clients post the product document back as-is, with a stale price.
	body := `{"items":[{"product":{"_id":"` + product.ID.Hex() +
		`","name":"Coffee Mug","price":0.01,"description":"A sturdy ceramic mug"},"quantity":2}]}`

	var input CreateOrderInput
	require.NoError(t, json.Unmarshal([]byte(body), &input))

	products.On("GetByID", ctx, product.ID).Return(product, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := useCase.Create(ctx, requester, input)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	// The snapshot comes from the catalog, not from the posted body.
	assert.InDelta(t, 9.99, order.Items[0].Product.Price, 0.001)
	assert.InDelta(t, 19.98, order.Total(), 0.001)

	orderRepo.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestOrderUseCase_Create_MissingProductID(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()

	order, err := useCase.Create(ctx, customer(), CreateOrderInput{
		Items: []OrderItemInput{{Product: OrderItemProduct{Name: "Coffee Mug"}, Quantity: 1}},
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	orderRepo.AssertNotCalled(t, "Create")
	products.AssertNotCalled(t, "GetByID")
}

func TestOrderUseCase_Create_EmptyItems(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()

	order, err := useCase.Create(ctx, customer(), CreateOrderInput{})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderUseCase_Create_InvalidQuantity(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()

	order, err := useCase.Create(ctx, customer(), CreateOrderInput{
		Items: []OrderItemInput{{Product: OrderItemProduct{ID: bson.NewObjectID().Hex()}, Quantity: 0}},
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderUseCase_Create_UnknownProduct(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	productID := bson.NewObjectID()

	products.On("GetByID", ctx, productID).Return(nil, productDomain.ErrProductNotFound)

	order, err := useCase.Create(ctx, customer(), CreateOrderInput{
		Items: []OrderItemInput{{Product: OrderItemProduct{ID: productID.Hex()}, Quantity: 1}},
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domain.ErrUnknownProduct))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderUseCase_ListForRequester_Admin(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	expected := []*domain.Order{{ID: bson.NewObjectID()}, {ID: bson.NewObjectID()}}

	orderRepo.On("List", ctx, 0, 50).Return(expected, nil)

	orders, err := useCase.ListForRequester(ctx, admin(), 0, 50)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	orderRepo.AssertNotCalled(t, "ListByCustomer")
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_ListForRequester_Customer(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	requester := customer()
	expected := []*domain.Order{{ID: bson.NewObjectID(), CustomerID: requester.ID}}

	orderRepo.On("ListByCustomer", ctx, requester.ID, 0, 50).Return(expected, nil)

	orders, err := useCase.ListForRequester(ctx, requester, 0, 50)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	orderRepo.AssertNotCalled(t, "List")
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_GetForRequester_OwnOrder(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	requester := customer()
	expected := &domain.Order{ID: bson.NewObjectID(), CustomerID: requester.ID}

	orderRepo.On("GetByID", ctx, expected.ID).Return(expected, nil)

	order, err := useCase.GetForRequester(ctx, requester, expected.ID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, expected, order)
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_GetForRequester_OtherCustomersOrder(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	requester := customer()
	other := &domain.Order{ID: bson.NewObjectID(), CustomerID: bson.NewObjectID()}

	orderRepo.On("GetByID", ctx, other.ID).Return(other, nil)

	// Another customer's order reads as not found, never as forbidden.
	order, err := useCase.GetForRequester(ctx, requester, other.ID.Hex())

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrForbidden))
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_GetForRequester_AdminSeesAnyOrder(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()
	expected := &domain.Order{ID: bson.NewObjectID(), CustomerID: bson.NewObjectID()}

	orderRepo.On("GetByID", ctx, expected.ID).Return(expected, nil)

	order, err := useCase.GetForRequester(ctx, admin(), expected.ID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, expected, order)
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_GetForRequester_MalformedID(t *testing.T) {
	orderRepo := &MockOrderRepository{}
	products := &MockProductReader{}
	useCase := NewOrderUseCase(orderRepo, products)

	ctx := context.Background()

	order, err := useCase.GetForRequester(ctx, customer(), "abc123def")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	orderRepo.AssertNotCalled(t, "GetByID")
}
