package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/guard"
)

var ErrConfigureLifecycleCommandIsNotConstructed = errors.New(
	"ConfigureLifecycleCommand must be created via NewConfigureLifecycleCommand constructor",
)

// ConfigureLifecycleCommand submits the lifecycle configuration of an order.
// The first submit creates the configuration; later submits replace every
// settings field and keep the status.
//
// Example:
//
//	cmd, err := NewConfigureLifecycleCommand(orderID, lifecycle.Settings{
//	    PurchaseBudget:  lifecycle.Percentage(decimal.NewFromInt(40)),
//	    ExecutionBudget: lifecycle.Percentage(decimal.NewFromInt(35)),
//	    TargetProfit:    lifecycle.Percentage(decimal.NewFromInt(25)),
//	})
type ConfigureLifecycleCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	settings lifecycle.Settings

	guard guard.ConstructorGuard
}

// NewConfigureLifecycleCommand creates a configure command. Settings are
// validated by the lifecycle model when the command is handled.
func NewConfigureLifecycleCommand(orderID kernel.UUID, settings lifecycle.Settings) (ConfigureLifecycleCommand, error) {
	cmd := ConfigureLifecycleCommand{
		settings: settings,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfigureLifecycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfigureLifecycleCommand) Validate() error {
	return c.guard.Validate(ErrConfigureLifecycleCommandIsNotConstructed)
}

func (c ConfigureLifecycleCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfigureLifecycleCommand) Settings() lifecycle.Settings {
	return c.settings
}

func (c *ConfigureLifecycleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
