package http

import (
	"encoding/json"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// CreateOrderRequest is the checkout payload sent by the storefront.
// A status sent by the client is accepted and discarded. Amounts, prices and
// distance are computed by the storefront and stored as sent.
type CreateOrderRequest struct {
	Customer      CustomerDTO    `json:"customer"`
	Items         []OrderItemDTO `json:"items"         validate:"dive"`
	PaymentMethod string         `json:"paymentMethod" validate:"required,oneof=efectivo transferencia"`
	PaymentAmount *float64       `json:"paymentAmount"`
	Total         float64        `json:"total"`
	ShippingCost  *float64       `json:"shippingCost"`
	DistanceKm    *float64       `json:"distanceKm"`
	Status        string         `json:"status"`
}

type CustomerDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Details string `json:"details"`
}

type OrderItemDTO struct {
	OriginalID string  `json:"originalId"`
	Name       string  `json:"name"`
	Protein    string  `json:"protein"`
	Quantity   int     `json:"quantity" validate:"gt=0"`
	Price      float64 `json:"price"`
	Note       string  `json:"note"`
}

func (r CreateOrderRequest) toCommand(orderID kernel.UUID) (commands.CreateOrderCommand, error) {
	items := make([]commands.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.OrderItem{
			MenuItemID: it.OriginalID,
			Name:       it.Name,
			Protein:    it.Protein,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Note:       it.Note,
		}
	}

	return commands.NewCreateOrderCommand(
		orderID,
		order.Customer{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
			Details: r.Customer.Details,
		},
		items,
		r.PaymentMethod,
		r.PaymentAmount,
		order.Charges{
			Total:        r.Total,
			ShippingCost: r.ShippingCost,
			DistanceKm:   r.DistanceKm,
		},
	)
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse keeps the "_id" key older storefront clients read.
type OrderResponse struct {
	ID            string         `json:"_id"`
	Customer      CustomerDTO    `json:"customer"`
	Items         []OrderItemDTO `json:"items"`
	PaymentMethod string         `json:"paymentMethod"`
	PaymentAmount *float64       `json:"paymentAmount,omitempty"`
	Total         float64        `json:"total"`
	ShippingCost  *float64       `json:"shippingCost,omitempty"`
	DistanceKm    *float64       `json:"distanceKm,omitempty"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func orderResponseFromQuery(o queries.ListOrdersQueryResponse) OrderResponse {
	items := make([]OrderItemDTO, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemDTO{
			OriginalID: it.MenuItemID,
			Name:       it.Name,
			Protein:    it.Protein,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Note:       it.Note,
		}
	}

	return OrderResponse{
		ID: o.ID.String(),
		Customer: CustomerDTO{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
			Details: o.Customer.Details,
		},
		Items:         items,
		PaymentMethod: o.PaymentMethod,
		PaymentAmount: o.PaymentAmount,
		Total:         o.Total,
		ShippingCost:  o.ShippingCost,
		DistanceKm:    o.DistanceKm,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	lineItems := o.Items()
	items := make([]OrderItemDTO, len(lineItems))
	for i, it := range lineItems {
		items[i] = OrderItemDTO{
			OriginalID: it.MenuItemID(),
			Name:       it.Name(),
			Protein:    it.Protein(),
			Quantity:   it.Quantity(),
			Price:      it.Price(),
			Note:       it.Note(),
		}
	}

	customer := o.Customer()
	payment := o.Payment()
	charges := o.Charges()

	return OrderResponse{
		ID: o.ID().String(),
		Customer: CustomerDTO{
			Name:    customer.Name,
			Phone:   customer.Phone,
			Address: customer.Address,
			Details: customer.Details,
		},
		Items:         items,
		PaymentMethod: payment.Method.String(),
		PaymentAmount: payment.Amount,
		Total:         charges.Total,
		ShippingCost:  charges.ShippingCost,
		DistanceKm:    charges.DistanceKm,
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
	}
}

// SetHighDemandRequest keeps "enabled" raw so strings and numbers are stored as sent.
type SetHighDemandRequest struct {
	Enabled json.RawMessage `json:"enabled"`
}

type HighDemandResponse struct {
	IsHighDemand kernel.Scalar `json:"isHighDemand"`
}

type SetHighDemandResponse struct {
	Success      bool          `json:"success"`
	IsHighDemand kernel.Scalar `json:"isHighDemand"`
}
