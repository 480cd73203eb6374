package queries

import (
	"context"
	"sort"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// GetOrdersQueryHandler reads the order book through a consistent snapshot.
type GetOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersQueryHandler(reader ports.OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: reader}
}

// Handle returns views sorted by order id.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)
	err := h.reader.ReadOrders(ctx, func(repo ports.OrderRepository) error {
		var (
			orders []*order.Order
			err    error
		)
		if query.Status() == order.Unknown {
			orders, err = repo.List(ctx)
		} else {
			orders, err = repo.ListByStatus(ctx, query.Status())
		}
		if err != nil {
			return err
		}

		for _, o := range orders {
			views = append(views, newOrderView(o))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views, nil
}
