package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/guard"
)

var ErrTransitionStatusCommandIsNotConstructed = errors.New(
	"TransitionStatusCommand must be created via NewTransitionStatusCommand constructor",
)

// TransitionStatusCommand moves an order to another lifecycle status.
// Any of the seven statuses may be targeted from any other.
//
// Example:
//
//	target, err := lifecycle.ParseStatus("procurement")
//	cmd, err := NewTransitionStatusCommand(orderID, target)
type TransitionStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  lifecycle.Status

	guard guard.ConstructorGuard
}

// NewTransitionStatusCommand validates the order id and the target status.
// An unknown status fails with errs.StatusIsInvalidError.
func NewTransitionStatusCommand(orderID kernel.UUID, target lifecycle.Status) (TransitionStatusCommand, error) {
	cmd := TransitionStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStatusCommandIsNotConstructed)
}

func (c TransitionStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionStatusCommand) Target() lifecycle.Status {
	return c.target
}

func (c *TransitionStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionStatusCommand) setTarget(target lifecycle.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
