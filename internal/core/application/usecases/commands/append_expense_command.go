package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/guard"
)

var ErrAppendExpenseCommandIsNotConstructed = errors.New(
	"AppendExpenseCommand must be created via NewAppendExpenseCommand constructor",
)

// AppendExpenseCommand records an expense against an order. The caller
// generates the expense id.
//
// Example:
//
//	cmd, err := NewAppendExpenseCommand(kernel.NewUUID(), orderID, expense.Details{
//	    Category:    expense.MaterialPurchase,
//	    Description: "Copper cable",
//	    Amount:      decimal.NewFromInt(35000),
//	    Date:        time.Now(),
//	})
type AppendExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseID kernel.UUID
	orderID   kernel.UUID
	details   expense.Details

	guard guard.ConstructorGuard
}

// NewAppendExpenseCommand validates the identifiers. Expense fields are
// validated by the expense model when the command is handled.
func NewAppendExpenseCommand(expenseID, orderID kernel.UUID, details expense.Details) (AppendExpenseCommand, error) {
	if err := errors.Join(expenseID.Validate(), orderID.Validate()); err != nil {
		return AppendExpenseCommand{}, err
	}

	return AppendExpenseCommand{
		expenseID: expenseID,
		orderID:   orderID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendExpenseCommand) Validate() error {
	return c.guard.Validate(ErrAppendExpenseCommandIsNotConstructed)
}

func (c AppendExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

func (c AppendExpenseCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AppendExpenseCommand) Details() expense.Details {
	return c.details
}
