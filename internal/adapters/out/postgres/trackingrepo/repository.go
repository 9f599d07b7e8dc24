// Package trackingrepo persists the delivery tracking record created when a
// courier is assigned to an order.
package trackingrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingDTO holds one row per assigned order.
type TrackingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(16);not null"`
	AssignedAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (TrackingDTO) TableName() string {
	return "delivery_tracking"
}

func fromDomain(t *delivery.Tracking) TrackingDTO {
	return TrackingDTO{
		ID:         t.ID().Raw(),
		OrderID:    t.OrderID().Raw(),
		CourierID:  t.CourierID().Raw(),
		Status:     t.Status().String(),
		AssignedAt: t.AssignedAt().UTC(),
		UpdatedAt:  t.UpdatedAt().UTC(),
	}
}

func toDomain(dto TrackingDTO) (*delivery.Tracking, error) {
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
	status, err := order.ParseDeliveryStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreTracking(id, orderID, courierID, status, dto.AssignedAt.UTC(), dto.UpdatedAt.UTC())
}

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

var _ ports.TrackingRepository = (*GormTrackingRepository)(nil)

func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

func (r *GormTrackingRepository) Add(ctx context.Context, t *delivery.Tracking) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := fromDomain(t)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormTrackingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("tracking", orderID.String())
	}
	if err != nil {
		return nil, pgerrs.Translate(err)
	}
	return toDomain(dto)
}

func (r *GormTrackingRepository) Update(ctx context.Context, t *delivery.Tracking) error {
	if err := t.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&TrackingDTO{}).
		Where("id = ?", t.ID().Raw()).
		Updates(map[string]any{
			"status":     t.Status().String(),
			"updated_at": t.UpdatedAt().UTC(),
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tracking", t.ID().String())
	}
	return nil
}
