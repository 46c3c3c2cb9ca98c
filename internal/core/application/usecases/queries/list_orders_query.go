// Package queries contains the read side: handlers that return read models without
// going through aggregates, except for settings which are created on first read.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery selects orders for the kitchen and delivery screens.
//
// Filters:
//   - status: exact match on the status wire name; an unknown name matches nothing
//   - activeOnly: everything that is not completed or cancelled
//
// status wins when both are set. With neither, every order is returned.
// Results are always newest first and never paginated.
//
// Example:
//
//	query := NewListOrdersQuery("", true)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list active orders: %w", err)
//	}
type ListOrdersQuery struct {
	status     string
	activeOnly bool

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status string, activeOnly bool) ListOrdersQuery {
	return ListOrdersQuery{
		status:     status,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() string {
	return q.status
}

// ActiveOnly reports whether the active filter applies, which is never the case
// when a status is given.
func (q ListOrdersQuery) ActiveOnly() bool {
	return q.status == "" && q.activeOnly
}

// ListOrdersQueryResponse is the read model of one order.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	Customer      CustomerResponse
	Items         []OrderItemResponse
	PaymentMethod string
	PaymentAmount *float64
	Total         float64
	ShippingCost  *float64
	DistanceKm    *float64
	Status        string
	CreatedAt     time.Time
}

type CustomerResponse struct {
	Name    string
	Phone   string
	Address string
	Details string
}

type OrderItemResponse struct {
	MenuItemID string
	Name       string
	Protein    string
	Quantity   int
	Price      float64
	Note       string
}
