package commands_test

import (
	"testing"

	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterOrderCommand(id, "SO-1", "Acme", dec("1500.50"), kernel.DefaultCurrency(), "open")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "SO-1", cmd.OrderNo())
	assert.Equal(t, "Acme", cmd.CustomerName())
	assert.True(t, dec("1500.50").Equal(cmd.TotalAmount()))
	assert.Equal(t, "INR", cmd.Currency().Code())
	assert.Equal(t, "open", cmd.SalesStatus())
}

func TestNewRegisterOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(kernel.UUID{}, "SO-1", "", dec("1"), kernel.DefaultCurrency(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterOrderCommand_EmptyOrderNo(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(kernel.NewUUID(), " ", "", dec("1"), kernel.DefaultCurrency(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderNoIsRequired)
}

func TestNewRegisterOrderCommand_NegativeAmount(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(kernel.NewUUID(), "SO-1", "", dec("-0.01"), kernel.DefaultCurrency(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRegisterOrderCommand_MissingCurrency(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(kernel.NewUUID(), "SO-1", "", dec("1"), kernel.Currency{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrCurrencyIsNotConstructed)
}
