package order

import (
	"errors"
	"fmt"
	"reflect"

	"orderflow/internal/pkg/report"
)

// Subscriber is told about every status change of the orders it is attached to.
type Subscriber interface {
	Notify(o *Order) error
}

// Publisher owns an order's subscriber list. It is injected by the Builder
// so that the order itself only decides when to publish.
type Publisher interface {
	Attach(s Subscriber)
	Detach(s Subscriber)
	Publish(o *Order) error
	Len() int
}

// Subscribers is the default Publisher. It delivers synchronously, in
// attachment order, and keeps going when a subscriber fails.
type Subscribers struct {
	reporter report.Reporter
	list     []Subscriber
}

// NewSubscribers returns an empty publisher. Attach, Detach and delivery
// failures are reported through reporter; nil discards them.
//
// Example:
//
//	subs := order.NewSubscribers(reporter)
//	subs.Attach(customer)
//	if err := subs.Publish(o); err != nil {
//	    // every subscriber was still called; err joins the failures
//	}
func NewSubscribers(reporter report.Reporter) *Subscribers {
	if reporter == nil {
		reporter = report.Discard
	}
	return &Subscribers{reporter: reporter}
}

// Attach appends s. Attaching the same subscriber twice delivers twice.
func (p *Subscribers) Attach(s Subscriber) {
	if s == nil {
		return
	}
	p.list = append(p.list, s)
	p.reporter.Report("subscriber attached", report.Info)
}

// Detach removes the first subscriber equal to s. Unknown subscribers are ignored.
func (p *Subscribers) Detach(s Subscriber) {
	for i, existing := range p.list {
		if sameSubscriber(existing, s) {
			p.list = append(p.list[:i:i], p.list[i+1:]...)
			p.reporter.Report("subscriber detached", report.Info)
			return
		}
	}
}

// Publish notifies every subscriber once and returns their joined errors.
func (p *Subscribers) Publish(o *Order) error {
	var errList []error
	for _, s := range p.snapshot() {
		if err := s.Notify(o); err != nil {
			err = fmt.Errorf("notify order #%d subscribers: %w", o.ID(), err)
			p.reporter.Report(err.Error(), report.Error)
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// Len returns the number of attached subscribers.
func (p *Subscribers) Len() int {
	return len(p.list)
}

// snapshot keeps delivery stable when a subscriber detaches itself mid-publish.
func (p *Subscribers) snapshot() []Subscriber {
	out := make([]Subscriber, len(p.list))
	copy(out, p.list)
	return out
}

// sameSubscriber compares by Go equality. Subscribers whose dynamic values
// cannot be compared (funcs, slices, maps) never match.
func sameSubscriber(a, b Subscriber) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
