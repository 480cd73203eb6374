package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// CreateOrderCommandHandler places an order: catalog lookup, validation,
// payment, construction through the lifecycle facade and storage.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, ids, validator, facade, payments)
//	cmd, _ := NewCreateOrderCommand(1, 2, "paypal")
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.ProductCatalog
	ids        ports.IDAllocator
	validator  OrderChecker
	lifecycle  OrderLifecycle
	payments   PaymentCharger
}

func NewCreateOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	catalog ports.ProductCatalog,
	ids ports.IDAllocator,
	validator OrderChecker,
	lifecycle OrderLifecycle,
	payments PaymentCharger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		ids:        ids,
		validator:  validator,
		lifecycle:  lifecycle,
		payments:   payments,
	}
}

// Handle returns the id of the stored order.
//
// Steps run in this order: catalog lookup, validation, payment, id
// allocation and construction, staging, Commit. A rejected request or a
// failed payment therefore never consumes an id and never announces an
// order. The facade reports "order #N created" before Add; Add only fails
// on a cancelled context or a duplicate id, and the Sequence never hands
// out duplicates.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	p, err := h.catalog.Get(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}

	if err = h.validator.Check(services.OrderRequest{
		ProductName:   p.Name(),
		Quantity:      cmd.Quantity(),
		PaymentMethod: cmd.PaymentMethod(),
	}); err != nil {
		return 0, err
	}

	method, err := order.ParsePaymentMethod(cmd.PaymentMethod())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.payments.Process(method, p.Price().Mul(cmd.Quantity())); err != nil {
		return 0, err
	}

	o, err := h.lifecycle.CreateOrder(p, cmd.Quantity(), method, h.ids.NextID())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
