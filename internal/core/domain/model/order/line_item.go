package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem did not come from NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product entry of an order: a menu reference plus the
// customer's customization. Prices are unit prices as shown to the customer.
type LineItem struct {
	// menuItemID references the catalog entry the item was picked from
	menuItemID string

	name    string
	protein string

	// quantity is always positive
	quantity int

	price float64
	note  string

	guard guard.ConstructorGuard
}

// NewLineItem validates and builds a line item.
// Only quantity is checked; names and prices are taken as submitted by the storefront.
func NewLineItem(menuItemID, name, protein string, quantity int, price float64, note string) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       name,
		protein:    protein,
		quantity:   quantity,
		price:      price,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) MenuItemID() string {
	return i.menuItemID
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) Protein() string {
	return i.protein
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) Price() float64 {
	return i.price
}

func (i LineItem) Note() string {
	return i.note
}

// Subtotal is price times quantity.
func (i LineItem) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
