package commands_test

import (
	"context"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/cart"
	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*account.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*account.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*account.User, error) {
	args := m.Called(ctx, phone)
	if u, ok := args.Get(0).(*account.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFoodRepository struct{ mock.Mock }

func (m *MockFoodRepository) Add(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFoodRepository) Update(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFoodRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFoodRepository) Get(ctx context.Context, id kernel.UUID) (*food.Food, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*food.Food); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFoodRepository) GetByName(ctx context.Context, name string) (*food.Food, error) {
	args := m.Called(ctx, name)
	if f, ok := args.Get(0).(*food.Food); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFoodRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*food.Food, error) {
	args := m.Called(ctx, ids)
	if items, ok := args.Get(0).([]*food.Food); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if c, ok := args.Get(0).(*cart.Cart); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) SaveLine(ctx context.Context, userID kernel.UUID, line *cart.Line) error {
	args := m.Called(ctx, userID, line)
	return args.Error(0)
}
func (m *MockCartRepository) DeleteLine(ctx context.Context, userID, lineID kernel.UUID) error {
	args := m.Called(ctx, userID, lineID)
	return args.Error(0)
}
func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetForUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockFoodUoW struct{ mock.Mock }

func (m *MockFoodUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockFoodUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockFoodUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockFoodUoW) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}

type MockFoodUoWFactory struct{ mock.Mock }

func (m *MockFoodUoWFactory) Create() commands.FoodUoW {
	args := m.Called()
	return args.Get(0).(commands.FoodUoW)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCartUoW) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlaceOrderUoW struct{ mock.Mock }

func (m *MockPlaceOrderUoW) BeginSerializable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockPlaceOrderUoW) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}
func (m *MockPlaceOrderUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockPlaceOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}
