// Package ports defines the persistence contracts the application layer depends on.
// Adapters under internal/adapters/out implement them.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted, so there is no Remove.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items in submission order.
	// Returns an errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the aggregate's current status and nothing else.
	// Returns an errs.ObjectNotFoundError when the order does not exist.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
