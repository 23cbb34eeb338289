package order

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the sales order the lifecycle engine works against. It is
// immutable input: the engine reads the order value and never writes back.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty order number
//   - Total amount must be zero or positive
//   - Currency must be a valid ISO-4217 code
//   - Can only be created through NewOrder constructor
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNo is the human readable number assigned by the sales module
	orderNo string

	// customerName is who the order was sold to
	customerName string

	// totalAmount is the order value in the order currency
	totalAmount decimal.Decimal

	// currency is the order currency
	currency kernel.Currency

	// salesStatus is the status label reported by the sales module, kept as is
	salesStatus string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way to create
// a valid Order.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNo: Order number as shown in the sales console
//   - customerName: Customer name, may be empty
//   - totalAmount: Order value (must not be negative)
//   - currency: Order currency
//   - salesStatus: Free text status from the sales module, may be empty
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "SO-2024-017", "Acme Pumps",
//	    decimal.NewFromInt(100000), kernel.DefaultCurrency(), "confirmed")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	orderNo string,
	customerName string,
	totalAmount decimal.Decimal,
	currency kernel.Currency,
	salesStatus string,
) (*Order, error) {
	order := &Order{
		customerName:  strings.TrimSpace(customerName),
		salesStatus:   strings.TrimSpace(salesStatus),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNo(orderNo),
		order.setTotalAmount(totalAmount),
		order.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the order number.
func (o *Order) OrderNo() string {
	return o.orderNo
}

// CustomerName returns the customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// TotalAmount returns the order value.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Currency returns the order currency.
func (o *Order) Currency() kernel.Currency {
	return o.currency
}

// SalesStatus returns the status label reported by the sales module.
func (o *Order) SalesStatus() string {
	return o.salesStatus
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNo validates and sets the order number.
func (o *Order) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNo = orderNo
	return nil
}

// setTotalAmount validates and sets the order value.
// The order value must not be negative.
func (o *Order) setTotalAmount(amount decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeAmount("total amount", amount); err != nil {
		return err
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}
