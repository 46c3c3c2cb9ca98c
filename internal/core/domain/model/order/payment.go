package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order on delivery.
type PaymentMethod string

const (
	// Cash is paid to the rider; the customer states the amount tendered so change can be prepared.
	Cash PaymentMethod = "efectivo"

	// Transfer is a bank transfer made by the customer.
	Transfer PaymentMethod = "transferencia"
)

// ParsePaymentMethod accepts the wire names "efectivo" and "transferencia".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case Cash, Transfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)),
		)
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Payment groups the method with the cash amount tendered.
type Payment struct {
	Method PaymentMethod

	// Amount is the cash the customer will hand over; nil when not stated.
	Amount *float64
}

// Change returns what the rider has to give back for a cash payment.
// ok is false for transfers and for cash payments without a stated amount.
func (p Payment) Change(total float64) (float64, bool) {
	if p.Method != Cash || p.Amount == nil {
		return 0, false
	}
	return *p.Amount - total, true
}

// Customer holds the free-text contact and delivery data. Every field is optional.
type Customer struct {
	Name    string
	Phone   string
	Address string

	// Details carries delivery notes ("blue gate, ring twice").
	Details string
}

// Charges are computed by the storefront and stored as submitted.
type Charges struct {
	Total        float64
	ShippingCost *float64
	DistanceKm   *float64
}
