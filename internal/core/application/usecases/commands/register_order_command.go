package commands

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
	"lifecycle/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
	ErrOrderNoIsRequired = errs.NewValueIsRequiredError("order number")
)

// RegisterOrderCommand represents a request to register a sales order with the
// lifecycle service. Registration copies the order fields the engine reads;
// the order is read-only afterwards.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewRegisterOrderCommand(orderID, "SO-2024-017", "Acme Pumps",
//	    decimal.NewFromInt(100000), kernel.DefaultCurrency(), "confirmed")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewRegisterOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNo      string
	customerName string
	totalAmount  decimal.Decimal
	currency     kernel.Currency
	salesStatus  string

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a sales order.
// Validates that order ID is valid, order number is not empty, the total
// amount is not negative and the currency is constructed.
func NewRegisterOrderCommand(
	orderID kernel.UUID,
	orderNo string,
	customerName string,
	totalAmount decimal.Decimal,
	currency kernel.Currency,
	salesStatus string,
) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		customerName: customerName,
		salesStatus:  salesStatus,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNo(orderNo),
		cmd.setTotalAmount(totalAmount),
		cmd.setCurrency(currency),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

func (c RegisterOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RegisterOrderCommand) OrderNo() string {
	return c.orderNo
}

func (c RegisterOrderCommand) CustomerName() string {
	return c.customerName
}

func (c RegisterOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

func (c RegisterOrderCommand) Currency() kernel.Currency {
	return c.currency
}

func (c RegisterOrderCommand) SalesStatus() string {
	return c.salesStatus
}

func (c *RegisterOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterOrderCommand) setOrderNo(orderNo string) error {
	if strings.TrimSpace(orderNo) == "" {
		return ErrOrderNoIsRequired
	}

	c.orderNo = orderNo
	return nil
}

func (c *RegisterOrderCommand) setTotalAmount(amount decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeAmount("total amount", amount); err != nil {
		return err
	}

	c.totalAmount = amount
	return nil
}

func (c *RegisterOrderCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}
