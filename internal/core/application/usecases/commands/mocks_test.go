package commands_test

import (
	"context"

	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/model/order"
	"lifecycle/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockLifecycleConfigRepository) Update(ctx context.Context, cfg lifecycle.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
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
	args := m.Called(ctx, e)
	return args.Error(0)
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

// MockUoW implements every narrow unit of work interface of the commands package.
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

func (m *MockUoW) LifecycleConfigRepository() ports.LifecycleConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.LifecycleConfigRepository)
}

func (m *MockUoW) ExpenseRepository() ports.ExpenseRepository {
	args := m.Called()
	return args.Get(0).(ports.ExpenseRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockExpenseUoWFactory struct{ mock.Mock }

func (m *MockExpenseUoWFactory) Create() commands.ExpenseUoW {
	args := m.Called()
	return args.Get(0).(commands.ExpenseUoW)
}
