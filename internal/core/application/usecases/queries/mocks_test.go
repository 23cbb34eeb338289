package queries_test

import (
	"context"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/model/order"
	"lifecycle/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockLifecycleConfigRepository struct{ mock.Mock }

func (m *MockLifecycleConfigRepository) Add(ctx context.Context, cfg lifecycle.Config) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockLifecycleConfigRepository) Update(ctx context.Context, cfg lifecycle.Config) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockLifecycleConfigRepository) Get(ctx context.Context, orderID kernel.UUID) (lifecycle.Config, error) {
	args := m.Called(ctx, orderID)
	cfg, _ := args.Get(0).(lifecycle.Config)
	return cfg, args.Error(1)
}

func (m *MockLifecycleConfigRepository) GetAll(ctx context.Context) ([]lifecycle.Config, error) {
	args := m.Called(ctx)
	configs, _ := args.Get(0).([]lifecycle.Config)
	return configs, args.Error(1)
}

type MockExpenseRepository struct{ mock.Mock }

func (m *MockExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockExpenseRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*expense.Expense, error) {
	args := m.Called(ctx, orderID)
	expenses, _ := args.Get(0).([]*expense.Expense)
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) GetAll(ctx context.Context) ([]*expense.Expense, error) {
	args := m.Called(ctx)
	expenses, _ := args.Get(0).([]*expense.Expense)
	return expenses, args.Error(1)
}

// MockReader hands out the three repository mocks.
type MockReader struct {
	Orders   *MockOrderRepository
	Configs  *MockLifecycleConfigRepository
	Expenses *MockExpenseRepository
}

func newMockReader() *MockReader {
	return &MockReader{
		Orders:   new(MockOrderRepository),
		Configs:  new(MockLifecycleConfigRepository),
		Expenses: new(MockExpenseRepository),
	}
}

func (r *MockReader) OrderRepository() ports.OrderRepository {
	return r.Orders
}

func (r *MockReader) LifecycleConfigRepository() ports.LifecycleConfigRepository {
	return r.Configs
}

func (r *MockReader) ExpenseRepository() ports.ExpenseRepository {
	return r.Expenses
}

type MockReaderFactory struct{ mock.Mock }

func (m *MockReaderFactory) Create() queries.Reader {
	args := m.Called()
	r, _ := args.Get(0).(queries.Reader)
	return r
}
