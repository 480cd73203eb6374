package services

import (
	"fmt"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/report"
)

var (
	_ order.Subscriber = (*CustomerNotifier)(nil)
	_ order.Subscriber = (*WarehouseNotifier)(nil)
)

// CustomerNotifier tells the named customer about every status change.
type CustomerNotifier struct {
	name     string
	reporter report.Reporter
}

// NewCustomerNotifier returns a subscriber that reports
// "notification for <name>: order #N status changed to <status>" at info
// severity. A nil reporter discards the messages.
func NewCustomerNotifier(name string, reporter report.Reporter) *CustomerNotifier {
	if reporter == nil {
		reporter = report.Discard
	}
	return &CustomerNotifier{name: name, reporter: reporter}
}

// Notify never fails.
func (n *CustomerNotifier) Notify(o *order.Order) error {
	n.reporter.Report(
		fmt.Sprintf("notification for %s: order #%d status changed to %s", n.name, o.ID(), o.Status()),
		report.Info,
	)
	return nil
}

// WarehouseNotifier reacts to processing and shipped; other statuses are ignored.
type WarehouseNotifier struct {
	reporter report.Reporter
}

// NewWarehouseNotifier returns a subscriber that reports warehouse work:
//   - processing: "warehouse: preparing order #N for shipping" (info)
//   - shipped: "warehouse: order #N has been shipped" (success)
//
// A nil reporter discards the messages.
func NewWarehouseNotifier(reporter report.Reporter) *WarehouseNotifier {
	if reporter == nil {
		reporter = report.Discard
	}
	return &WarehouseNotifier{reporter: reporter}
}

func (n *WarehouseNotifier) Notify(o *order.Order) error {
	//nolint:exhaustive // the warehouse only acts on these two
	switch o.Status() {
	case order.Processing:
		n.reporter.Report(fmt.Sprintf("warehouse: preparing order #%d for shipping", o.ID()), report.Info)
	case order.Shipped:
		n.reporter.Report(fmt.Sprintf("warehouse: order #%d has been shipped", o.ID()), report.Success)
	}
	return nil
}
