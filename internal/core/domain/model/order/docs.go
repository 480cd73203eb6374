// Package order contains the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root, mutated only through SetStatus
//   - Status: the closed status enumeration and its transition table
//   - Builder: the only way to obtain a constructed Order
//   - Subscribers: the default Publisher that fans status changes out to
//     Subscriber implementations
//   - PaymentMethod: credit, paypal or bank
//
// Lifecycle:
//
//	o, err := order.NewBuilder(reporter).
//	    SetProduct(laptop).
//	    SetQuantity(2).
//	    SetPaymentMethod(order.PaymentCredit).
//	    SetID(ids.NextID()).
//	    Build()
//	o.Attach(customerNotifier)
//	err = o.SetStatus(order.Processing) // customerNotifier.Notify(o) runs here
//
// Everything in this package is synchronous. Rejections are both returned
// as errors and reported once through the report.Reporter the order was
// built with.
package order
