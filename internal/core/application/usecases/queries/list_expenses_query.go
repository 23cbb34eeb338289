package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/guard"
)

var ErrListExpensesQueryIsNotConstructed = errors.New(
	"ListExpensesQuery must be created via NewListExpensesQuery constructor",
)

// ListExpensesQuery lists the expense ledger of one order in recording order.
//
// Example:
//
//	query, _ := NewListExpensesQuery(orderID)
//	expenses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list expenses: %w", err)
//	}
//	for _, e := range expenses {
//	    fmt.Printf("%s %s %s\n", e.Date.Format(time.DateOnly), e.Category, e.Amount)
//	}
type ListExpensesQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListExpensesQuery(orderID kernel.UUID) (ListExpensesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListExpensesQuery{}, err
	}
	return ListExpensesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListExpensesQuery) Validate() error {
	return q.guard.Validate(ErrListExpensesQueryIsNotConstructed)
}

func (q ListExpensesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ListExpensesQueryResponse is one ledger row.
type ListExpensesQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Vendor      string
	ReferenceNo string
	Approved    bool
}
