// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in orders plus one row per line item in order_items.
package orderrepo

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Customer      CustomerDTO   `gorm:"embedded;embeddedPrefix:customer_"`
	Items         []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentMethod string        `gorm:"type:varchar(32);not null"`
	PaymentAmount *float64
	Total         float64 `gorm:"not null"`
	ShippingCost  *float64
	DistanceKm    *float64
	Status        string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is embedded in the orders table with the customer_ prefix.
type CustomerDTO struct {
	Name    string `gorm:"type:text"`
	Phone   string `gorm:"type:text"`
	Address string `gorm:"type:text"`
	Details string `gorm:"type:text"`
}

// LineItemDTO is one row of order_items. Position keeps the submission order.
type LineItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID string    `gorm:"type:varchar(64)"`
	Name       string    `gorm:"type:text"`
	Protein    string    `gorm:"type:text"`
	Quantity   int       `gorm:"not null"`
	Price      float64   `gorm:"not null"`
	Note       string    `gorm:"type:text"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()
	customer := aggregate.Customer()
	payment := aggregate.Payment()
	charges := aggregate.Charges()

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:    id,
			Position:   i,
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Protein:    item.Protein(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
			Note:       item.Note(),
		})
	}

	return OrderDTO{
		ID: id,
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
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// dto.Items must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(
			itemDTO.MenuItemID,
			itemDTO.Name,
			itemDTO.Protein,
			itemDTO.Quantity,
			itemDTO.Price,
			itemDTO.Note,
		)
		if itemErr != nil {
			return nil, fmt.Errorf("order %s item %d: %w", id, itemDTO.Position, itemErr)
		}
		items = append(items, item)
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Customer{
			Name:    dto.Customer.Name,
			Phone:   dto.Customer.Phone,
			Address: dto.Customer.Address,
			Details: dto.Customer.Details,
		},
		items,
		order.Payment{Method: method, Amount: dto.PaymentAmount},
		order.Charges{
			Total:        dto.Total,
			ShippingCost: dto.ShippingCost,
			DistanceKm:   dto.DistanceKm,
		},
		status,
		dto.CreatedAt,
	)
}
