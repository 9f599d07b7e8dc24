package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierNotificationsQueryHandler builds a courier's inbox. Only Pending
// notifications of orders that still await a courier are listed, newest first.
type GetCourierNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierNotificationsQueryHandler(db *gorm.DB) GetCourierNotificationsQueryHandler {
	return GetCourierNotificationsQueryHandler{db: db}
}

func (h GetCourierNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierNotificationsQuery,
) ([]CourierNotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			n.id,
			n.order_id,
			o.total,
			COALESCE(rb.city_name, ''),
			COALESCE(sb.city_name, ''),
			n.created_at
		FROM notifications n
		JOIN orders o ON o.id = n.order_id
		LEFT JOIN businesses rb ON rb.id = o.requester_id
		LEFT JOIN businesses sb ON sb.id = o.supplier_id
		WHERE n.courier_id = ?
			AND n.status = ?
			AND o.status = ?
			AND o.courier_id IS NULL
		ORDER BY n.created_at DESC, n.id
	`, query.CourierID().Raw(), notification.Pending.String(), order.Confirmed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inbox := make([]CourierNotificationResponse, 0)
	for rows.Next() {
		var (
			resp                CourierNotificationResponse
			notificationID, oID uuid.UUID
		)
		err = rows.Scan(
			&notificationID,
			&oID,
			&resp.OrderTotal,
			&resp.RequesterCity,
			&resp.SupplierCity,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.NotificationID, err = kernel.UUIDFromRaw(notificationID); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromRaw(oID); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()
		inbox = append(inbox, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return inbox, nil
}
