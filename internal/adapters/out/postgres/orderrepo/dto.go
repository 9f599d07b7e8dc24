// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (status, delivery_status) index serves the fan-out retry sweep.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequesterID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status         string          `gorm:"type:varchar(16);not null;index:idx_orders_status_delivery,priority:1"`
	DeliveryStatus string          `gorm:"type:varchar(16);not null;index:idx_orders_status_delivery,priority:2"`
	CourierID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	Items          []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one product line of an order. Position keeps the requested line order.
type LineItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;check:chk_order_items_quantity_positive,quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Raw()
		courierID = &raw
	}

	orderID := o.ID().Raw()
	items := make([]LineItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, LineItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Raw(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Subtotal:  item.Subtotal().Amount(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		RequesterID:    o.RequesterID().Raw(),
		SupplierID:     o.SupplierID().Raw(),
		Total:          o.Total().Amount(),
		Status:         o.Status().String(),
		DeliveryStatus: o.DeliveryStatus().String(),
		CourierID:      courierID,
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Items must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromRaw(dto.RequesterID)
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromRaw(dto.SupplierID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromRaw(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryStatus, err := order.ParseDeliveryStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, requesterID, supplierID, items, total, status, deliveryStatus, courierID,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromRaw(dto.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(productID, dto.Quantity, unitPrice)
}
