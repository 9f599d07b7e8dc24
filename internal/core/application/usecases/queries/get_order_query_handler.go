package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order straight from the tables with raw SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
// Items come back in the order they were requested.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var (
		resp                        GetOrderQueryResponse
		id, requesterID, supplierID uuid.UUID
		courierID                   uuid.NullUUID
	)
	err := db.Raw(`
		SELECT
			id,
			requester_id,
			supplier_id,
			status,
			delivery_status,
			total,
			courier_id,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Raw()).Row().Scan(
		&id,
		&requesterID,
		&supplierID,
		&resp.Status,
		&resp.DeliveryStatus,
		&resp.Total,
		&courierID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromRaw(id); err != nil {
		return nil, err
	}
	if resp.RequesterID, err = kernel.UUIDFromRaw(requesterID); err != nil {
		return nil, err
	}
	if resp.SupplierID, err = kernel.UUIDFromRaw(supplierID); err != nil {
		return nil, err
	}
	if courierID.Valid {
		cID, idErr := kernel.UUIDFromRaw(courierID.UUID)
		if idErr != nil {
			return nil, idErr
		}
		resp.CourierID = &cID
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()

	if resp.Items, err = h.items(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item      OrderItemResponse
			productID uuid.UUID
		)
		if err = rows.Scan(&productID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromRaw(productID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
