package expense

import (
	"fmt"

	"lifecycle/internal/pkg/errs"
)

// Category classifies an expense.
type Category int

const (
	UnknownCategory Category = iota
	MaterialPurchase
	Labor
	Transport
	SiteExpenses
	Subcontractor
	EquipmentRental
	Misc
)

func getCategoryLabels() map[Category]string {
	//nolint:exhaustive // UnknownCategory has no wire label
	return map[Category]string{
		MaterialPurchase: "material_purchase",
		Labor:            "labor",
		Transport:        "transport",
		SiteExpenses:     "site_expenses",
		Subcontractor:    "subcontractor",
		EquipmentRental:  "equipment_rental",
		Misc:             "misc",
	}
}

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	return []Category{MaterialPurchase, Labor, Transport, SiteExpenses, Subcontractor, EquipmentRental, Misc}
}

// ParseCategory maps a wire label such as "material_purchase" to a Category.
func ParseCategory(label string) (Category, error) {
	for c, l := range getCategoryLabels() {
		if l == label {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"expense category",
		fmt.Errorf("%q is not a known category", label),
	)
}

// Validate reports whether c is one of the seven known categories.
func (c Category) Validate() error {
	if _, ok := getCategoryLabels()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("expense category", fmt.Errorf("%d is not a valid category", int(c)))
	}
	return nil
}

func (c Category) String() string {
	if l, ok := getCategoryLabels()[c]; ok {
		return l
	}
	return "unknown"
}
