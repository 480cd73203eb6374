package services_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/report"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newProduct(t *testing.T, price string) product.Product {
	t.Helper()
	p, err := product.NewProduct(1, "Widget", kernel.MustMoney(price), "")
	require.NoError(t, err)
	return p
}

type OrderFacadeSuite struct {
	suite.Suite

	board  *report.NoticeBoard
	facade *services.OrderFacade
}

func TestOrderFacadeSuite(t *testing.T) {
	suite.Run(t, new(OrderFacadeSuite))
}

func (s *OrderFacadeSuite) SetupTest() {
	s.board = report.NewNoticeBoard(time.Hour)
	s.facade = services.NewOrderFacade(s.board)
}

func (s *OrderFacadeSuite) createOrder() *order.Order {
	o, err := s.facade.CreateOrder(newProduct(s.T(), "100"), 3, order.PaymentCredit, 1)
	s.Require().NoError(err)
	return o
}

func (s *OrderFacadeSuite) TestCreateOrder() {
	o := s.createOrder()

	s.Equal(order.Pending, o.Status())
	s.Equal("300.00", o.TotalAmount().String())
	s.Equal(2, o.Subscribers())
	s.Equal([]string{
		"subscriber attached",
		"subscriber attached",
		"order #1 created successfully",
	}, s.board.Messages())
	s.Equal(report.Success, s.board.Notices()[2].Severity)
}

func (s *OrderFacadeSuite) TestCreateOrder_WithoutProduct() {
	o, err := s.facade.CreateOrder(product.Product{}, 1, order.PaymentCredit, 1)

	s.Require().ErrorIs(err, order.ErrConstruction)
	s.Nil(o)
	s.Len(s.board.Notices(), 1)
}

func (s *OrderFacadeSuite) TestFullLifecycle() {
	o := s.createOrder()

	s.Require().NoError(s.facade.ProcessOrder(o))
	s.Equal(order.Processing, o.Status())

	s.Require().NoError(s.facade.ShipOrder(o))
	s.Equal(order.Shipped, o.Status())

	s.Require().NoError(s.facade.DeliverOrder(o))
	s.Equal(order.Delivered, o.Status())

	s.board.Clear()
	err := s.facade.ProcessOrder(o)

	s.Require().ErrorIs(err, order.ErrInvalidTransition)
	s.Equal(order.Delivered, o.Status())
	s.Len(s.board.Notices(), 1)
}

func (s *OrderFacadeSuite) TestProcessOrder_Messages() {
	o := s.createOrder()
	s.board.Clear()

	s.Require().NoError(s.facade.ProcessOrder(o))

	s.Equal([]string{
		"notification for customer: order #1 status changed to processing",
		"warehouse: preparing order #1 for shipping",
		"order #1 is being processed",
	}, s.board.Messages())
}

func (s *OrderFacadeSuite) TestProcessOrder_Twice() {
	o := s.createOrder()
	s.Require().NoError(s.facade.ProcessOrder(o))
	s.board.Clear()

	s.Require().NoError(s.facade.ProcessOrder(o))

	s.Equal([]string{"order #1 is already in processing status"}, s.board.Messages())
}

func (s *OrderFacadeSuite) TestCancelOrder() {
	o := s.createOrder()
	s.board.Clear()

	s.Require().NoError(s.facade.CancelOrder(o))

	s.Equal(order.Cancelled, o.Status())
	notices := s.board.Notices()
	s.Require().Len(notices, 2)
	s.Equal("order #1 has been cancelled", notices[1].Message)
	s.Equal(report.Warning, notices[1].Severity)
}

func (s *OrderFacadeSuite) TestShippedCannotBeCancelled() {
	o := s.createOrder()
	s.Require().NoError(s.facade.ProcessOrder(o))
	s.Require().NoError(s.facade.ShipOrder(o))

	s.Require().ErrorIs(s.facade.CancelOrder(o), order.ErrInvalidTransition)
	s.Equal(order.Shipped, o.Status())
}
