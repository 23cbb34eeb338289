package queries

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/guard"
)

var ErrGetOrderLifecycleQueryIsNotConstructed = errors.New(
	"GetOrderLifecycleQuery must be created via NewGetOrderLifecycleQuery constructor",
)

// GetOrderLifecycleQuery reads the full lifecycle snapshot of one order:
// configuration, budgets against actuals, profit and the payment plan.
//
// Example:
//
//	query, _ := NewGetOrderLifecycleQuery(orderID)
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(snapshot.Financials.ProfitMargin)
type GetOrderLifecycleQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderLifecycleQuery(orderID kernel.UUID) (GetOrderLifecycleQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLifecycleQuery{}, err
	}
	return GetOrderLifecycleQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLifecycleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLifecycleQueryIsNotConstructed)
}

func (q GetOrderLifecycleQuery) OrderID() kernel.UUID {
	return q.orderID
}
