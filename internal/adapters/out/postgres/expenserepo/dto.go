// Package expenserepo persists the append-only expense ledger.
package expenserepo

import (
	"time"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseDTO represents the database structure for one expense.
// Categories are stored by label so rows stay readable in SQL tools.
type ExpenseDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    string          `gorm:"type:varchar(32);not null;index"`
	Description string          `gorm:"type:text;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null"`
	Vendor      *string         `gorm:"type:varchar(255)"`
	ReferenceNo *string         `gorm:"type:varchar(128)"`
	Approved    bool            `gorm:"not null;default:false"`
	RecordedAt  time.Time       `gorm:"autoCreateTime;not null;index"`
}

// TableName specifies the database table name for expenses.
func (ExpenseDTO) TableName() string {
	return "expenses"
}

func fromDomain(e *expense.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID().Bytes(),
		OrderID:     e.OrderID().Bytes(),
		Category:    e.Category().String(),
		Description: e.Description(),
		Amount:      e.Amount(),
		ExpenseDate: e.Date(),
		Vendor:      optional(e.Vendor()),
		ReferenceNo: optional(e.ReferenceNo()),
		Approved:    e.Approved(),
	}
}

func toDomain(dto ExpenseDTO) (*expense.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	category, err := expense.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return expense.RestoreExpense(id, orderID, expense.Details{
		Category:    category,
		Description: dto.Description,
		Amount:      dto.Amount,
		Date:        dto.ExpenseDate,
		Vendor:      deref(dto.Vendor),
		ReferenceNo: deref(dto.ReferenceNo),
	}, dto.Approved)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
