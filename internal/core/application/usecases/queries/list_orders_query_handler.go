package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders straight from the orders and order_items
// tables without loading aggregates.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the matching orders sorted by creation time, newest first.
// Orders created in the same instant are ordered by id, descending.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.loadOrders(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.loadItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) loadOrders(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	stmt := h.db.WithContext(ctx).
		Table("orders").
		Select(`id,
			customer_name, customer_phone, customer_address, customer_details,
			payment_method, payment_amount,
			total, shipping_cost, distance_km,
			status, created_at`)

	switch {
	case query.Status() != "":
		stmt = stmt.Where("status = ?", query.Status())
	case query.ActiveOnly():
		stmt = stmt.Where("status NOT IN ?", terminalStatusNames())
	}

	rows, err := stmt.Order("created_at DESC").Order("id DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.Customer.Name,
			&resp.Customer.Phone,
			&resp.Customer.Address,
			&resp.Customer.Details,
			&resp.PaymentMethod,
			&resp.PaymentAmount,
			&resp.Total,
			&resp.ShippingCost,
			&resp.DistanceKm,
			&resp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.CreatedAt = createdAt.UTC()
		resp.Items = make([]OrderItemResponse, 0)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadItems fills Items for every order with one query, keeping item positions.
func (h ListOrdersQueryHandler) loadItems(ctx context.Context, orders []ListOrdersQueryResponse) error {
	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		id := o.ID.Bytes()
		ids = append(ids, id)
		index[id] = i
	}

	rows, err := h.db.WithContext(ctx).
		Table("order_items").
		Select("order_id, menu_item_id, name, protein, quantity, price, note").
		Where("order_id IN ?", ids).
		Order("order_id").
		Order("position").
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse

		err = rows.Scan(
			&orderID,
			&item.MenuItemID,
			&item.Name,
			&item.Protein,
			&item.Quantity,
			&item.Price,
			&item.Note,
		)
		if err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

func terminalStatusNames() []string {
	terminal := order.TerminalStatuses()
	names := make([]string, 0, len(terminal))
	for _, s := range terminal {
		names = append(names, s.String())
	}
	return names
}
