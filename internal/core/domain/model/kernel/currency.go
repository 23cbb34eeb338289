package kernel

import (
	"fmt"
	"strings"

	"lifecycle/internal/pkg/errs"
	"lifecycle/internal/pkg/guard"
)

// DefaultCurrencyCode is used for orders registered without an explicit currency.
// The sales console this service backs works in Indian Rupees.
const DefaultCurrencyCode = "INR"

// ErrCurrencyIsNotConstructed is returned when a zero-value Currency is used.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError(
	"currency must be created via NewCurrency or DefaultCurrency")

// Currency is an immutable ISO-4217 alphabetic code such as "INR" or "USD".
// Codes are normalised to upper case.
//
// Example:
//
//	cur, err := kernel.NewCurrency("inr")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(cur) // INR
type Currency struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency validates and normalises a three letter currency code.
func NewCurrency(code string) (Currency, error) {
	c := Currency{guard: guard.NewConstructorGuard()}
	if err := c.setCode(code); err != nil {
		return Currency{}, err
	}
	return c, nil
}

// DefaultCurrency returns the currency assumed when none is supplied.
func DefaultCurrency() Currency {
	return Currency{code: DefaultCurrencyCode, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the currency was created through a constructor.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the upper-case ISO code.
func (c Currency) Code() string {
	return c.code
}

func (c Currency) String() string {
	return c.code
}

// IsEqual compares two currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

func (c *Currency) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(code) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three letter code", code))
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three letter code", code))
		}
	}
	c.code = code
	return nil
}
