package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
)

// ErrExpenseIsNotConstructed is returned when an Expense was not created
// through NewExpense or RestoreExpense.
var ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense or RestoreExpense")

// Details are the operator supplied fields of an expense.
type Details struct {
	Category    Category
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Vendor      string
	ReferenceNo string
}

// Expense is one spend recorded against an order.
//
// Invariants:
//   - id and orderID are valid identifiers
//   - category is one of the known categories
//   - description is not blank
//   - amount is zero or positive
//   - date is set
type Expense struct {
	id            kernel.UUID
	orderID       kernel.UUID
	category      Category
	description   string
	amount        decimal.Decimal
	date          time.Time
	vendor        string
	referenceNo   string
	approved      bool
	isConstructed bool
}

// NewExpense records a new, not yet approved expense for an order.
//
// Example:
//
//	e, err := expense.NewExpense(kernel.NewUUID(), orderID, expense.Details{
//	    Category:    expense.MaterialPurchase,
//	    Description: "Copper cable 4 sq mm",
//	    Amount:      decimal.NewFromInt(35000),
//	    Date:        time.Now(),
//	})
func NewExpense(id, orderID kernel.UUID, d Details) (*Expense, error) {
	return RestoreExpense(id, orderID, d, false)
}

// RestoreExpense rebuilds an expense from persistence, approval flag included.
func RestoreExpense(id, orderID kernel.UUID, d Details, approved bool) (*Expense, error) {
	e := &Expense{
		vendor:        strings.TrimSpace(d.Vendor),
		referenceNo:   strings.TrimSpace(d.ReferenceNo),
		approved:      approved,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setCategory(d.Category),
		e.setDescription(d.Description),
		e.setAmount(d.Amount),
		e.setDate(d.Date),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Expense was built through a constructor.
func (e *Expense) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExpenseIsNotConstructed
	}
	return nil
}

func (e *Expense) ID() kernel.UUID {
	return e.id
}

func (e *Expense) OrderID() kernel.UUID {
	return e.orderID
}

func (e *Expense) Category() Category {
	return e.category
}

func (e *Expense) Description() string {
	return e.description
}

func (e *Expense) Amount() decimal.Decimal {
	return e.amount
}

func (e *Expense) Date() time.Time {
	return e.date
}

// Vendor returns the vendor name, or "" when not given.
func (e *Expense) Vendor() string {
	return e.vendor
}

// ReferenceNo returns the invoice or voucher number, or "" when not given.
func (e *Expense) ReferenceNo() string {
	return e.referenceNo
}

// Approved reports whether the expense was approved. New expenses are not.
func (e *Expense) Approved() bool {
	return e.approved
}

func (e *Expense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Expense) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	e.orderID = orderID
	return nil
}

func (e *Expense) setCategory(c Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e.category = c
	return nil
}

func (e *Expense) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("expense description")
	}
	e.description = description
	return nil
}

func (e *Expense) setAmount(amount decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeAmount("expense amount", amount); err != nil {
		return err
	}
	e.amount = amount
	return nil
}

func (e *Expense) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expense date")
	}
	e.date = date
	return nil
}
