package queries

import (
	"context"
)

// GetOrderQueryHandler reads registered orders.
type GetOrderQueryHandler struct {
	readers ReaderFactory
}

func NewGetOrderQueryHandler(readers ReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{readers: readers}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.readers.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:           o.ID(),
		OrderNo:      o.OrderNo(),
		CustomerName: o.CustomerName(),
		TotalAmount:  o.TotalAmount(),
		Currency:     o.Currency().Code(),
		SalesStatus:  o.SalesStatus(),
	}, nil
}
