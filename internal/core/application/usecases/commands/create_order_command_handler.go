package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists new orders in pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// cmd.OrderID() is now stored with status pending
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler that stamps createdAt using now.
func (h CreateOrderCommandHandler) WithClock(now func() time.Time) CreateOrderCommandHandler {
	h.now = now
	return h
}

// Handle stamps the creation time and stores the order with its items in one transaction.
// Nothing is retried; a failed write is returned to the caller as is.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.Items(),
		cmd.Payment(),
		cmd.Charges(),
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
