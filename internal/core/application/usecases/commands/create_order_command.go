package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItem is one line of an incoming order as the storefront sends it.
type OrderItem struct {
	MenuItemID string
	Name       string
	Protein    string
	Quantity   int
	Price      float64
	Note       string
}

// CreateOrderCommand represents a customer checkout.
// There is no status field: new orders always start in pending.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID,
//	    order.Customer{Name: "Ana", Phone: "555-0101"},
//	    []OrderItem{{MenuItemID: "cls1", Name: "Ajonjolí", Protein: "Pollo", Quantity: 2, Price: 70}},
//	    "efectivo", &tendered,
//	    order.Charges{Total: 175},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	items    []order.LineItem
	payment  order.Payment
	charges  order.Charges

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the checkout payload.
// Line items and the payment method are checked here; all errors are returned together.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	items []OrderItem,
	paymentMethod string,
	paymentAmount *float64,
	charges order.Charges,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer: customer,
		charges:  charges,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setPayment(paymentMethod, paymentAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Items() []order.LineItem {
	return append([]order.LineItem(nil), c.items...)
}

func (c CreateOrderCommand) Payment() order.Payment {
	return c.payment
}

func (c CreateOrderCommand) Charges() order.Charges {
	return c.charges
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	lineItems := make([]order.LineItem, 0, len(items))
	var err error
	for i, in := range items {
		item, itemErr := order.NewLineItem(in.MenuItemID, in.Name, in.Protein, in.Quantity, in.Price, in.Note)
		if itemErr != nil {
			err = errors.Join(err, fmt.Errorf("item %d: %w", i, itemErr))
			continue
		}
		lineItems = append(lineItems, item)
	}
	if err != nil {
		return err
	}

	c.items = lineItems
	return nil
}

func (c *CreateOrderCommand) setPayment(method string, amount *float64) error {
	m, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}

	c.payment = order.Payment{Method: m, Amount: amount}
	return nil
}
