package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/order"
)

// RegisterOrderCommandHandler handles the registration of sales orders.
//
// Example:
//
//	handler := NewRegisterOrderCommandHandler(uowFactory)
//	cmd, _ := NewRegisterOrderCommand(orderID, "SO-9", "Acme", amount, kernel.DefaultCurrency(), "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order registration failed: %w", err)
//	}
type RegisterOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewRegisterOrderCommandHandler(uowFactory OrderUoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Uses transaction to ensure order is properly persisted or rolled back on error.
func (h *RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNo(),
		cmd.CustomerName(),
		cmd.TotalAmount(),
		cmd.Currency(),
		cmd.SalesStatus(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
