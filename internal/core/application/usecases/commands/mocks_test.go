package commands_test

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(_ context.Context) ([]*order.Order, error) {
	panic("not implemented in mock")
}

func (m *MockOrderRepository) ListByStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	panic("not implemented in mock")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]product.Product)
	return products, args.Error(1)
}

func (m *MockCatalog) Get(ctx context.Context, id int) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}
