package queries_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueriesTestSuite struct {
	suite.Suite

	store   *memory.Store
	facade  *services.OrderFacade
	orders  queries.GetOrdersQueryHandler
	summary queries.GetSystemStatusQueryHandler
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.facade = services.NewOrderFacade(nil)
	s.orders = queries.NewGetOrdersQueryHandler(s.store)
	s.summary = queries.NewGetSystemStatusQueryHandler(s.store)
}

// seed stores one order per status; order i has id and quantity i.
func (s *QueriesTestSuite) seed(statuses ...order.Status) {
	ctx := s.T().Context()
	p, err := product.NewProduct(1, "Headphones", kernel.MustMoney("99.99"), "")
	s.Require().NoError(err)

	uow := memory.NewUnitOfWorkFactory(s.store).Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	for i, target := range statuses {
		o, err := s.facade.CreateOrder(p, i+1, order.PaymentCredit, i+1)
		s.Require().NoError(err)
		for _, step := range pathTo(target) {
			s.Require().NoError(o.SetStatus(step))
		}
		s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}
	s.Require().NoError(uow.Commit(ctx))
}

func pathTo(target order.Status) []order.Status {
	//nolint:exhaustive // Pending needs no steps
	switch target {
	case order.Processing:
		return []order.Status{order.Processing}
	case order.Shipped:
		return []order.Status{order.Processing, order.Shipped}
	case order.Delivered:
		return []order.Status{order.Processing, order.Shipped, order.Delivered}
	case order.Cancelled:
		return []order.Status{order.Cancelled}
	}
	return nil
}

func (s *QueriesTestSuite) TestGetOrders_All() {
	s.seed(order.Pending, order.Shipped, order.Cancelled)

	query, err := queries.NewGetOrdersQuery()
	s.Require().NoError(err)
	views, err := s.orders.Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(views, 3)
	s.Equal(1, views[0].ID)
	s.Equal("Headphones", views[1].ProductName)
	s.Equal(2, views[1].Quantity)
	s.Equal("199.98", views[1].Total.String())
	s.Equal(order.Shipped, views[1].Status)
	s.Equal(order.PaymentCredit, views[2].PaymentMethod)

	s.Equal([]order.Status{order.Processing, order.Cancelled}, views[0].Next)
	s.False(views[0].Final)
	s.Equal([]order.Status{order.Delivered}, views[1].Next)
	s.Empty(views[2].Next)
	s.True(views[2].Final)
	s.Equal("order #2: 2 x Headphones at $99.99, total $199.98 via credit, status shipped", views[1].Summary)
}

func (s *QueriesTestSuite) TestGetOrders_ByStatus() {
	s.seed(order.Pending, order.Processing, order.Pending)

	query, err := queries.NewGetOrdersQuery(order.Pending)
	s.Require().NoError(err)
	views, err := s.orders.Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal([]int{1, 3}, []int{views[0].ID, views[1].ID})
}

func (s *QueriesTestSuite) TestGetOrders_Empty() {
	query, _ := queries.NewGetOrdersQuery()
	views, err := s.orders.Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.NotNil(views)
	s.Empty(views)
}

func (s *QueriesTestSuite) TestGetOrders_InvalidFilter() {
	_, err := queries.NewGetOrdersQuery(order.Status(42))

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *QueriesTestSuite) TestGetOrders_NotConstructed() {
	_, err := s.orders.Handle(s.T().Context(), queries.GetOrdersQuery{})

	s.Require().ErrorIs(err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func (s *QueriesTestSuite) TestGetOrders_CancelledContext() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()
	query, _ := queries.NewGetOrdersQuery()

	_, err := s.orders.Handle(ctx, query)

	s.Require().True(errors.Is(err, context.Canceled))
}

func (s *QueriesTestSuite) TestGetSystemStatus() {
	s.seed(
		order.Pending,
		order.Processing,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
		order.Pending,
		order.Delivered,
	)

	status, err := s.summary.Handle(s.T().Context(), queries.NewGetSystemStatusQuery())

	s.Require().NoError(err)
	s.Equal(7, status.TotalOrders)
	s.Equal(2, status.Pending)
	s.Equal(1, status.Processing)
	s.Equal(1, status.Shipped)
	s.Equal(2, status.Delivered)
	s.Equal(1, status.Cancelled)
	// 99.99 * (1+2+...+7)
	s.Equal("2799.72", status.TotalRevenue.String())
	s.Require().Len(status.Recent, queries.RecentOrdersLimit)
	s.Equal(3, status.Recent[0].ID)
	s.Equal(7, status.Recent[4].ID)
}

func (s *QueriesTestSuite) TestGetSystemStatus_Empty() {
	status, err := s.summary.Handle(s.T().Context(), queries.NewGetSystemStatusQuery())

	s.Require().NoError(err)
	s.Zero(status.TotalOrders)
	s.True(status.TotalRevenue.IsZero())
	s.Empty(status.Recent)
}

func (s *QueriesTestSuite) TestGetSystemStatus_NotConstructed() {
	_, err := s.summary.Handle(s.T().Context(), queries.GetSystemStatusQuery{})

	s.Require().ErrorIs(err, queries.ErrGetSystemStatusQueryIsNotConstructed)
}
