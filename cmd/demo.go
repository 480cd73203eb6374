package cmd

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"

	"github.com/go-faster/errors"
)

// demoStep is one scripted request against the order service.
type demoStep struct {
	productID int
	quantity  int
	payment   string
	actions   []commands.Action
}

var demoScript = []demoStep{
	{productID: 1, quantity: 1, payment: "credit", actions: []commands.Action{
		commands.ActionProcess, commands.ActionShip, commands.ActionDeliver, commands.ActionProcess,
	}},
	{productID: 2, quantity: 2, payment: "PayPal", actions: []commands.Action{
		commands.ActionProcess, commands.ActionShip, commands.ActionCancel,
	}},
	{productID: 3, quantity: 3, payment: "bank", actions: []commands.Action{commands.ActionCancel}},
	{productID: 4, quantity: 0, payment: "credit"},
	{productID: 5, quantity: 1, payment: "bitcoin"},
}

// RunDemo walks a few orders through their lifecycle, including rejected
// requests and illegal transitions, and logs the resulting summary.
// Expected rejections are logged, not returned.
func RunDemo(ctx context.Context, root *CompositionRoot) error {
	create := root.CreateCreateOrderCommandHandler()
	change := root.CreateChangeOrderStatusCommandHandler()
	logger := root.Logger().With("component", "demo")

	for _, step := range demoScript {
		cmd, err := commands.NewCreateOrderCommand(step.productID, step.quantity, step.payment)
		if err != nil {
			return errors.Wrap(err, "build create order command")
		}

		id, err := create.Handle(ctx, cmd)
		if err != nil {
			logger.WarnContext(ctx, "Order rejected", "product_id", step.productID, "error", err)
			continue
		}

		for _, action := range step.actions {
			changeCmd, err := commands.NewChangeOrderStatusCommand(id, action)
			if err != nil {
				return errors.Wrap(err, "build change order status command")
			}

			err = change.Handle(ctx, changeCmd)
			if errors.Is(err, order.ErrInvalidTransition) {
				logger.WarnContext(ctx, "Transition rejected", "order_id", id, "action", action.String(), "error", err)
				continue
			}
			if err != nil {
				return errors.Wrapf(err, "%s order #%d", action, id)
			}
		}
	}

	listQuery, err := queries.NewGetOrdersQuery()
	if err != nil {
		return errors.Wrap(err, "build get orders query")
	}
	views, err := root.CreateGetOrdersQueryHandler().Handle(ctx, listQuery)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}
	for _, v := range views {
		logger.InfoContext(ctx, "Order", "details", v.Summary, "final", v.Final, "next", v.Next)
	}

	status, err := root.CreateGetSystemStatusQueryHandler().Handle(ctx, queries.NewGetSystemStatusQuery())
	if err != nil {
		return errors.Wrap(err, "read system status")
	}

	logger.InfoContext(ctx, "Demo finished",
		"orders", status.TotalOrders,
		"delivered", status.Delivered,
		"cancelled", status.Cancelled,
		"revenue", status.TotalRevenue.String(),
	)
	return nil
}
