package expenserepo

import (
	"context"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM.
// Rows are never updated or deleted.
type GormExpenseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExpenseRepository creates a new GORM expense repository.
func NewGormExpenseRepository(db *gorm.DB, tracker aggregateTracker) *GormExpenseRepository {
	return &GormExpenseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an expense to the ledger.
func (r *GormExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(e.ID(), e)
	return nil
}

// GetByOrder retrieves the expenses of one order in recording order.
func (r *GormExpenseRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*expense.Expense, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExpenseDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("recorded_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAll retrieves every expense in recording order.
func (r *GormExpenseRepository) GetAll(ctx context.Context) ([]*expense.Expense, error) {
	var dtos []ExpenseDTO
	if err := r.db.WithContext(ctx).Order("recorded_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []ExpenseDTO) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}
