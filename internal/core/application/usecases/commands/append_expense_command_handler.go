package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/expense"
)

// AppendExpenseCommandHandler appends expenses to the ledger of existing orders.
// Appends commute, so concurrent appends for one order need no coordination.
type AppendExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

func NewAppendExpenseCommandHandler(uowFactory ExpenseUoWFactory) AppendExpenseCommandHandler {
	return AppendExpenseCommandHandler{uowFactory: uowFactory}
}

// Handle validates the expense, checks that the order exists and stores the
// expense with approved set to false.
func (h *AppendExpenseCommandHandler) Handle(ctx context.Context, cmd AppendExpenseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	e, err := expense.NewExpense(cmd.ExpenseID(), cmd.OrderID(), cmd.Details())
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

	if _, err = uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.ExpenseRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
