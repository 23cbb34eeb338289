package expense

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
)

// Ledger is the append-only list of expenses of one order. Totals are always
// computed from the entries; nothing is cached.
type Ledger struct {
	orderID kernel.UUID
	entries []*Expense
}

// NewLedger builds a ledger for orderID from already recorded expenses.
// Every expense must belong to orderID.
func NewLedger(orderID kernel.UUID, expenses []*Expense) (*Ledger, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	l := &Ledger{orderID: orderID, entries: make([]*Expense, 0, len(expenses))}
	for _, e := range expenses {
		if err := l.Append(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// OrderID returns the order the ledger belongs to.
func (l *Ledger) OrderID() kernel.UUID {
	return l.orderID
}

// Append adds e to the ledger. It fails when e belongs to another order.
func (l *Ledger) Append(e *Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !e.OrderID().IsEqual(l.orderID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expense order id",
			fmt.Errorf("expense %s belongs to order %s, not %s", e.ID(), e.OrderID(), l.orderID),
		)
	}
	l.entries = append(l.entries, e)
	return nil
}

// Entries returns the expenses in append order.
func (l *Ledger) Entries() []*Expense {
	return slices.Clone(l.entries)
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Total sums every expense of the order.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Amount())
	}
	return total
}

// TotalForCategories sums the expenses whose category is in categories.
// An empty set sums to zero.
func (l *Ledger) TotalForCategories(categories ...Category) decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		if slices.Contains(categories, e.Category()) {
			total = total.Add(e.Amount())
		}
	}
	return total
}

// TotalForBucket sums the expenses that mapping charges to bucket.
func (l *Ledger) TotalForBucket(mapping BucketMapping, bucket Bucket) decimal.Decimal {
	return l.TotalForCategories(mapping.Categories(bucket)...)
}
