package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// Update writes the mutable columns of an order. Line items never change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":          dto.Status,
		"delivery_status": dto.DeliveryStatus,
		"courier_id":      dto.CourierID,
		"updated_at":      dto.UpdatedAt,
	})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves an order by ID and locks its row until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&dto, "id = ?", id.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

// AssignCourier binds the courier only if the order is still Confirmed, Pending
// and has no courier. The condition and the write are one statement, so among
// concurrent callers at most one sees true.
func (r *GormOrderRepository) AssignCourier(ctx context.Context, orderID, courierID kernel.UUID, now time.Time) (bool, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status = ? AND delivery_status = ?",
			orderID.Raw(), order.Confirmed.String(), order.DeliveryPending.String()).
		Updates(map[string]any{
			"courier_id":      courierID.Raw(),
			"delivery_status": order.DeliveryAssigned.String(),
			"updated_at":      now,
		})
	if result.Error != nil {
		return false, pgerrs.Translate(result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ListAwaitingCourierWithoutNotifications returns the oldest Confirmed, unassigned
// orders for which no notification was ever created.
func (r *GormOrderRepository) ListAwaitingCourierWithoutNotifications(ctx context.Context, limit int) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ? AND delivery_status = ? AND courier_id IS NULL",
			order.Confirmed.String(), order.DeliveryPending.String()).
		Where("NOT EXISTS (SELECT 1 FROM notifications n WHERE n.order_id = orders.id)").
		Order("created_at").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		orderID, idErr := kernel.UUIDFromRaw(id)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}
	return ids, nil
}
