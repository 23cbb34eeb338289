package queries_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
)

func TestNewGetOrderQuery_RejectsZeroID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, "SO-7", "125000.50")
	reader := newMockReader()
	reader.Orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	factory := new(MockReaderFactory)
	factory.On("Create").Return(reader).Once()

	query, err := queries.NewGetOrderQuery(o.ID())
	require.NoError(t, err)

	resp, err := queries.NewGetOrderQueryHandler(factory).Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, o.ID(), resp.ID)
	assert.Equal(t, "SO-7", resp.OrderNo)
	assert.Equal(t, "Acme", resp.CustomerName)
	assert.True(t, dec("125000.50").Equal(resp.TotalAmount))
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, "confirmed", resp.SalesStatus)
	reader.Orders.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	reader := newMockReader()
	reader.Orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	factory := new(MockReaderFactory)
	factory.On("Create").Return(reader).Once()

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(factory).Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockReaderFactory)

	_, err := queries.NewGetOrderQueryHandler(factory).Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestGetOrderQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	boom := errors.New("connection reset")
	reader := newMockReader()
	reader.Orders.On("Get", ctx, id).Return(nil, boom).Once()
	factory := new(MockReaderFactory)
	factory.On("Create").Return(reader).Once()

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(factory).Handle(ctx, query)
	require.ErrorIs(t, err, boom)
}
