// Package services provides domain services that orchestrate the order
// lifecycle on top of the order aggregate.
//
// The package includes:
//   - OrderValidator: an ordered pipeline of request checks that gates creation
//   - OrderFacade: the single entry point for create, process, ship, deliver and cancel
//   - CustomerNotifier, WarehouseNotifier: the subscribers every facade order starts with
//   - PaymentProcessor: charges an order total through the strategy for its payment method
//
// Every service reports outcomes through a report.Reporter and never holds
// package level state; the composition root wires one instance of each.
package services
