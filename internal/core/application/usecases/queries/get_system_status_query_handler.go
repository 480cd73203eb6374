package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

type GetSystemStatusQueryHandler struct {
	reader ports.OrderReader
}

func NewGetSystemStatusQueryHandler(reader ports.OrderReader) GetSystemStatusQueryHandler {
	return GetSystemStatusQueryHandler{reader: reader}
}

func (h GetSystemStatusQueryHandler) Handle(ctx context.Context, query GetSystemStatusQuery) (SystemStatus, error) {
	if err := query.Validate(); err != nil {
		return SystemStatus{}, err
	}

	var status SystemStatus
	err := h.reader.ReadOrders(ctx, func(repo ports.OrderRepository) error {
		orders, err := repo.List(ctx)
		if err != nil {
			return err
		}
		status = summarize(orders)
		return nil
	})
	if err != nil {
		return SystemStatus{}, err
	}

	return status, nil
}

// summarize expects orders in insertion order.
func summarize(orders []*order.Order) SystemStatus {
	s := SystemStatus{
		TotalOrders: len(orders),
		Recent:      make([]OrderView, 0, RecentOrdersLimit),
	}

	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalAmount())

		//nolint:exhaustive // stored orders never hold Unknown
		switch o.Status() {
		case order.Pending:
			s.Pending++
		case order.Processing:
			s.Processing++
		case order.Shipped:
			s.Shipped++
		case order.Delivered:
			s.Delivered++
		case order.Cancelled:
			s.Cancelled++
		}
	}

	start := max(len(orders)-RecentOrdersLimit, 0)
	for _, o := range orders[start:] {
		s.Recent = append(s.Recent, newOrderView(o))
	}

	return s
}
