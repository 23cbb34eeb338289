package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
)

// ListExpensesQueryHandler reads ledger rows straight from the expenses table.
type ListExpensesQueryHandler struct {
	db *gorm.DB
}

// NewListExpensesQueryHandler creates a handler for expense listing.
// Requires a GORM database connection for query execution.
func NewListExpensesQueryHandler(db *gorm.DB) ListExpensesQueryHandler {
	return ListExpensesQueryHandler{db: db}
}

// Handle returns the expenses of the order oldest first. An unknown order
// fails with errs.ObjectNotFoundError; a known order without expenses
// yields an empty slice.
func (h ListExpensesQueryHandler) Handle(
	ctx context.Context,
	query ListExpensesQuery,
) ([]ListExpensesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var orders int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&orders).Error; err != nil {
		return nil, err
	}
	if orders == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			order_id,
			category,
			description,
			amount,
			expense_date,
			vendor,
			reference_no,
			approved
		FROM expenses
		WHERE order_id = ?
		ORDER BY recorded_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]ListExpensesQueryResponse, 0)
	for rows.Next() {
		var (
			resp          ListExpensesQueryResponse
			id, orderID   uuid.UUID
			amount        decimal.Decimal
			vendor, refNo *string
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&resp.Category,
			&resp.Description,
			&amount,
			&resp.Date,
			&vendor,
			&refNo,
			&resp.Approved,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.Amount = amount
		if vendor != nil {
			resp.Vendor = *vendor
		}
		if refNo != nil {
			resp.ReferenceNo = *refNo
		}

		expenses = append(expenses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
