package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// ChangeOrderStatusCommandHandler loads an order, applies the requested
// lifecycle action through the facade and stores the result.
type ChangeOrderStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	lifecycle  OrderLifecycle
}

func NewChangeOrderStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	lifecycle OrderLifecycle,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle returns transition errors unchanged, so callers can match
// *order.InvalidTransitionError with errors.As.
//
// The order is staged with Update before the transition runs. Every
// storage check that can fail (context, existence) therefore happens while
// the order is still untouched, and only Commit follows the status change.
// A transition that fails leaves nothing to commit and the deferred
// Rollback discards the staged write.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = h.apply(o, cmd.Action()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ChangeOrderStatusCommandHandler) apply(o *order.Order, action Action) error {
	switch action {
	case ActionProcess:
		return h.lifecycle.ProcessOrder(o)
	case ActionShip:
		return h.lifecycle.ShipOrder(o)
	case ActionDeliver:
		return h.lifecycle.DeliverOrder(o)
	case ActionCancel:
		return h.lifecycle.CancelOrder(o)
	default:
		return action.Validate()
	}
}
