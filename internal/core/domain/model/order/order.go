package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. Everything but the status
// is fixed at creation; the status may be overwritten any number of times.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Every line item was built with NewLineItem
//   - Payment method is efectivo or transferencia
//   - Status is always one of the six lifecycle states
//   - createdAt is set once, in UTC
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	customer Customer

	// items keeps the submission order
	items []LineItem

	payment Payment
	charges Charges

	// status represents the current state in the order lifecycle
	status Status

	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a pending order. The status is not a parameter: every new
// order starts in Pending, whatever the client asked for.
//
// Example:
//
//	item, _ := order.NewLineItem("cls1", "Ajonjolí", "Pollo", 2, 70, "")
//	o, err := order.NewOrder(
//	    kernel.NewUUID(),
//	    order.Customer{Name: "Ana"},
//	    []order.LineItem{item},
//	    order.Payment{Method: order.Cash},
//	    order.Charges{Total: 140},
//	    time.Now(),
//	)
func NewOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	payment Payment,
	charges Charges,
	createdAt time.Time,
) (*Order, error) {
	return build(id, customer, items, payment, charges, Pending, createdAt)
}

// RestoreOrder rebuilds an order loaded from storage, including its current status.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	payment Payment,
	charges Charges,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	return build(id, customer, items, payment, charges, status, createdAt)
}

func build(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	payment Payment,
	charges Charges,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:      customer,
		charges:       charges,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setPayment(payment),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the line items in submission order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Charges() Charges {
	return o.charges
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsActive reports whether the order has not reached a terminal status.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// ChangeStatus overwrites the status. Any valid status is accepted from any
// current status, including moving back out of a terminal one.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Method.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCreatedAt normalizes to UTC at microsecond precision, the resolution
// PostgreSQL keeps, so a restored order compares equal to the one created.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return nil
}
