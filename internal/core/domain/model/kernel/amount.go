package kernel

import (
	"github.com/shopspring/decimal"

	"lifecycle/internal/pkg/errs"
)

// ValidateNonNegativeAmount rejects monetary amounts below zero.
// paramName is used in the returned error.
func ValidateNonNegativeAmount(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError(paramName, amount.String(), 0, "unbounded")
	}
	return nil
}
