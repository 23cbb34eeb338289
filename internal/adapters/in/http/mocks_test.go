package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/services"
)

type mockCommand[C any] struct {
	mock.Mock
}

func (m *mockCommand[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockQuery[Q, R any] struct {
	mock.Mock
}

// Handle returns the configured result, or calls it when the expectation
// was set up with a func(Q) R.
func (m *mockQuery[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	if fn, ok := args.Get(0).(func(Q) R); ok {
		return fn(query), args.Error(1)
	}
	return args.Get(0).(R), args.Error(1)
}

type mockDashboard struct {
	mock.Mock
}

func (m *mockDashboard) Handle(ctx context.Context, query queries.GetDashboardQuery) (services.Dashboard, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.Dashboard), args.Error(1)
}

func (m *mockDashboard) Snapshots(
	ctx context.Context,
	query queries.GetDashboardQuery,
) ([]services.LifecycleSnapshot, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]services.LifecycleSnapshot), args.Error(1)
}
