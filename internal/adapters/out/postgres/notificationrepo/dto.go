// Package notificationrepo persists courier notifications.
package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is one invitation of one courier to one order.
// The unique (order_id, courier_id) index makes a repeated fan-out unable to
// invite the same courier twice.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_notifications_order_courier,priority:1;index:idx_notifications_order_status,priority:1"`
	CourierID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_notifications_order_courier,priority:2;index:idx_notifications_courier_status,priority:1"`
	Status      string     `gorm:"type:varchar(16);not null;index:idx_notifications_order_status,priority:2;index:idx_notifications_courier_status,priority:2"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	RespondedAt *time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Raw(),
		OrderID:     n.OrderID().Raw(),
		CourierID:   n.CourierID().Raw(),
		Status:      n.Status().String(),
		CreatedAt:   n.CreatedAt(),
		RespondedAt: n.RespondedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromRaw(dto.OrderID)
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromRaw(dto.CourierID)
	if err != nil {
		return nil, err
	}
	status, err := notification.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var respondedAt *time.Time
	if dto.RespondedAt != nil {
		at := dto.RespondedAt.UTC()
		respondedAt = &at
	}

	return notification.RestoreNotification(id, orderID, courierID, status, dto.CreatedAt.UTC(), respondedAt)
}
