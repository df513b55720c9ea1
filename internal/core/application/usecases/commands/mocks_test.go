package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetForUserForUpdate(ctx context.Context, userID kernel.ID, orderID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) HasActive(ctx context.Context, userID kernel.ID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetItem(ctx context.Context, itemID kernel.ID) (*order.Item, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*order.Item)
	return item, args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, item *order.Item) (*order.Item, error) {
	args := m.Called(ctx, item)
	stored, _ := args.Get(0).(*order.Item)
	return stored, args.Error(1)
}

func (m *MockOrderRepository) UpdateItem(ctx context.Context, item *order.Item) (*order.Item, error) {
	args := m.Called(ctx, item)
	stored, _ := args.Get(0).(*order.Item)
	return stored, args.Error(1)
}

func (m *MockOrderRepository) DeleteItem(ctx context.Context, item *order.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockOrderRepository) PurgeForUsers(ctx context.Context, userIDs []kernel.ID) (int64, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) (*user.User, error) {
	args := m.Called(ctx, aggregate)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) (*user.User, error) {
	args := m.Called(ctx, aggregate)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) ListDeletedBefore(ctx context.Context, cutoff time.Time) ([]kernel.ID, error) {
	args := m.Called(ctx, cutoff)
	ids, _ := args.Get(0).([]kernel.ID)
	return ids, args.Error(1)
}

func (m *MockUserRepository) Purge(ctx context.Context, ids []kernel.ID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID kernel.ID, role user.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func restoredOrder(t *testing.T, id, userID int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(mustID(t, id), mustID(t, userID), status)
	require.NoError(t, err)
	return o
}

func restoredItem(t *testing.T, id, orderID, productID int64, quantity int) *order.Item {
	t.Helper()
	item, err := order.RestoreItem(mustID(t, id), mustID(t, orderID), mustID(t, productID), quantity)
	require.NoError(t, err)
	return item
}

func restoredProduct(t *testing.T, id int64) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(mustID(t, id), "Notebook", decimal.RequireFromString("3.50"))
	require.NoError(t, err)
	return p
}

func restoredUser(t *testing.T, id int64, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(mustID(t, id), email, "Ada", "Lovelace", "hash", role)
	require.NoError(t, err)
	return u
}
