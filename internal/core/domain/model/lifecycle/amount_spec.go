package lifecycle

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lifecycle/internal/pkg/errs"
	"lifecycle/internal/pkg/guard"
)

// ErrAmountSpecIsNotConstructed is returned when a zero-value AmountSpec is used.
var ErrAmountSpecIsNotConstructed = errs.NewValueIsRequiredError(
	"amount spec must be created via NewAmountSpec, Percentage or FixedValue")

var hundred = decimal.NewFromInt(100)

// AmountKind tells how an AmountSpec value is interpreted.
type AmountKind int

const (
	// UnknownAmountKind catches uninitialised kinds.
	UnknownAmountKind AmountKind = iota

	// PercentageKind means the value is a percentage of the order value.
	PercentageKind

	// ValueKind means the value is an absolute amount in the order currency.
	ValueKind
)

func getAmountKindLabels() map[AmountKind]string {
	//nolint:exhaustive // UnknownAmountKind has no wire label
	return map[AmountKind]string{
		PercentageKind: "percentage",
		ValueKind:      "value",
	}
}

// ParseAmountKind maps a wire label ("percentage" or "value") to an AmountKind.
func ParseAmountKind(label string) (AmountKind, error) {
	for kind, l := range getAmountKindLabels() {
		if l == label {
			return kind, nil
		}
	}
	return UnknownAmountKind, errs.NewValueIsInvalidErrorWithCause(
		"amount kind",
		fmt.Errorf("%q is not one of percentage, value", label),
	)
}

// String returns the wire label of the kind, or "unknown".
func (k AmountKind) String() string {
	if l, ok := getAmountKindLabels()[k]; ok {
		return l
	}
	return "unknown"
}

// AmountSpec is a tagged amount: either a percentage of the order value or
// a fixed value. The numeric value is accepted as given; range checks on
// percentages are deliberately not applied.
//
// Example:
//
//	purchase := lifecycle.Percentage(decimal.NewFromInt(40))
//	purchase.Resolve(decimal.NewFromInt(100000)) // 40000
//
//	advance := lifecycle.FixedValue(decimal.NewFromInt(25000))
//	advance.Resolve(decimal.NewFromInt(100000)) // 25000
type AmountSpec struct { //nolint:recvcheck //using for validation
	kind  AmountKind
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewAmountSpec builds an AmountSpec from a wire kind label and a value.
// Only the kind is validated.
func NewAmountSpec(kind string, value decimal.Decimal) (AmountSpec, error) {
	k, err := ParseAmountKind(kind)
	if err != nil {
		return AmountSpec{}, err
	}
	return AmountSpec{kind: k, value: value, guard: guard.NewConstructorGuard()}, nil
}

// Percentage returns a spec meaning pct percent of the order value.
func Percentage(pct decimal.Decimal) AmountSpec {
	return AmountSpec{kind: PercentageKind, value: pct, guard: guard.NewConstructorGuard()}
}

// FixedValue returns a spec meaning an absolute amount.
func FixedValue(amount decimal.Decimal) AmountSpec {
	return AmountSpec{kind: ValueKind, value: amount, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the spec was built through a constructor.
func (s AmountSpec) Validate() error {
	return s.guard.Validate(ErrAmountSpecIsNotConstructed)
}

// Kind returns how Value is interpreted.
func (s AmountSpec) Kind() AmountKind {
	return s.kind
}

// Value returns the percentage or the absolute amount, depending on Kind.
func (s AmountSpec) Value() decimal.Decimal {
	return s.value
}

// IsPercentage reports whether the spec is relative to the order value.
func (s AmountSpec) IsPercentage() bool {
	return s.kind == PercentageKind
}

// Resolve converts the spec into a monetary amount against orderValue:
// orderValue * value / 100 for percentages, value otherwise. It is a pure
// function of its inputs. An order value of zero resolves every percentage
// to zero. A zero-value spec resolves to zero.
func (s AmountSpec) Resolve(orderValue decimal.Decimal) decimal.Decimal {
	switch s.kind {
	case PercentageKind:
		return orderValue.Mul(s.value).Div(hundred)
	case ValueKind:
		return s.value
	default:
		return decimal.Zero
	}
}

// IsEqual compares kind and numeric value.
func (s AmountSpec) IsEqual(other AmountSpec) bool {
	return s.kind == other.kind && s.value.Equal(other.value)
}

func (s AmountSpec) String() string {
	if s.kind == PercentageKind {
		return s.value.String() + "%"
	}
	return s.value.String()
}
