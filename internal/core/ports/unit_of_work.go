package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary over the order book.
// Client code must explicitly manage its lifecycle:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// ... uow.OrderRepository() ...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts the transaction and holds the order book exclusively until
	// Commit or Rollback.
	Begin(ctx context.Context) error

	// Commit applies staged changes. It fails only when no transaction is
	// active; conflicts and cancellation are reported by the staging calls
	// (Add, Update), which handlers make before mutating aggregates.
	Commit(ctx context.Context) error

	// Rollback discards staged changes. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to this transaction.
	OrderRepository() OrderRepository
}
