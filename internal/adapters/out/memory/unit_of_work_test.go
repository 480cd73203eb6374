package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id int) *order.Order {
	t.Helper()
	p, err := product.NewProduct(1, "Tablet", kernel.MustMoney("299.99"), "")
	require.NoError(t, err)
	o, err := order.NewBuilder(nil).SetProduct(p).SetQuantity(1).SetPaymentMethod(order.PaymentBank).SetID(id).Build()
	require.NoError(t, err)
	return o
}

func countOrders(t *testing.T, store *memory.Store) int {
	t.Helper()
	var n int
	require.NoError(t, store.ReadOrders(t.Context(), func(repo ports.OrderRepository) error {
		orders, err := repo.List(t.Context())
		n = len(orders)
		return err
	}))
	return n
}

func TestUnitOfWork_CommitAppliesStagedWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	repo := uow.OrderRepository()
	require.NoError(t, repo.Add(ctx, newOrder(t, 1)))
	require.NoError(t, repo.Add(ctx, newOrder(t, 2)))

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID())

	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, countOrders(t, store))
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1)))
	require.NoError(t, uow.Rollback(ctx))

	assert.Zero(t, store.Len())
}

func TestUnitOfWork_InactiveWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.ErrorIs(t, uow.OrderRepository().Add(ctx, newOrder(t, 1)), memory.ErrTransactionNotActive)
	require.ErrorIs(t, uow.Commit(ctx), memory.ErrTransactionNotActive)
	require.NoError(t, uow.Rollback(ctx))
}

func TestUnitOfWork_BeginWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()

	require.ErrorIs(t, uow.Begin(ctx), context.Canceled)
}

func TestUnitOfWork_SerializesWriters(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	pending := newOrder(t, 2)
	var wg sync.WaitGroup
	committed := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		second := factory.Create()
		if err := second.Begin(ctx); err != nil {
			return
		}
		defer func() { _ = second.Rollback(ctx) }()
		_ = second.OrderRepository().Add(ctx, pending)
		_ = second.Commit(ctx)
		close(committed)
	}()

	select {
	case <-committed:
		t.Fatal("second unit of work committed while the first held the store")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, first.OrderRepository().Add(ctx, newOrder(t, 1)))
	require.NoError(t, first.Commit(ctx))
	wg.Wait()

	assert.Equal(t, 2, store.Len())
}

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.OrderRepository()
	for id := 1; id <= 3; id++ {
		require.NoError(t, repo.Add(ctx, newOrder(t, id)))
	}
	require.NoError(t, uow.Commit(ctx))

	t.Run("duplicate id is rejected", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		err := uow.OrderRepository().Add(ctx, newOrder(t, 2))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := factory.Create().OrderRepository()

		_, err := repo.Get(ctx, 99)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		err = repo.Update(ctx, newOrder(t, 99))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("update and list by status", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()
		repo := uow.OrderRepository()

		o, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, o.SetStatus(order.Processing))
		require.NoError(t, repo.Update(ctx, o))

		processing, err := repo.ListByStatus(ctx, order.Processing)
		require.NoError(t, err)
		require.Len(t, processing, 1)
		assert.Equal(t, 2, processing[0].ID())

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID(), all[1].ID(), all[2].ID()})

		require.NoError(t, uow.Commit(ctx))
	})

	t.Run("list by invalid status fails", func(t *testing.T) {
		_, err := factory.Create().OrderRepository().ListByStatus(ctx, order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		err := uow.OrderRepository().Add(ctx, &order.Order{})
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestStore_ReadOrders_IsReadOnly(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1)))
	require.NoError(t, uow.Commit(ctx))

	err := store.ReadOrders(ctx, func(repo ports.OrderRepository) error {
		got, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID())

		pending, err := repo.ListByStatus(ctx, order.Pending)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		assert.ErrorIs(t, repo.Add(ctx, newOrder(t, 2)), memory.ErrReadOnly)
		assert.ErrorIs(t, repo.Update(ctx, got), memory.ErrReadOnly)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
