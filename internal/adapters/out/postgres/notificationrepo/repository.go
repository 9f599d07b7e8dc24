package notificationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

var _ ports.NotificationRepository = (*GormNotificationRepository)(nil)

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// AddAll inserts the notifications of one fan-out in a single statement.
func (r *GormNotificationRepository) AddAll(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		if err := n.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(n))
	}

	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dtos).Error)
}

func (r *GormNotificationRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("order_id = ?", orderID.Raw()).
		Count(&count).Error
	if err != nil {
		return false, pgerrs.Translate(err)
	}
	return count > 0, nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}
	if err != nil {
		return nil, pgerrs.Translate(err)
	}
	return toDomain(dto)
}

// ListByOrder returns every notification of the order, oldest first.
func (r *GormNotificationRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*notification.Notification, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Raw()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	result := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, n)
	}
	return result, nil
}

// Update stores a resolution. The row must still be Pending; a row that was
// resolved in the meantime yields notification.ErrAlreadyResolved.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ? AND status = ?", dto.ID, notification.Pending.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"responded_at": dto.RespondedAt,
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return pgerrs.Translate(err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	return fmt.Errorf("%w: %s", notification.ErrAlreadyResolved, n.ID())
}

// ExpirePendingForOrder expires the order's Pending notifications, except the
// one given, and returns how many rows changed.
func (r *GormNotificationRepository) ExpirePendingForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	except *kernel.UUID,
	now time.Time,
) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("order_id = ? AND status = ?", orderID.Raw(), notification.Pending.String())
	if except != nil {
		query = query.Where("id <> ?", except.Raw())
	}

	return r.expire(query, now)
}

// ExpirePendingOlderThan expires every Pending notification created before cutoff.
func (r *GormNotificationRepository) ExpirePendingOlderThan(ctx context.Context, cutoff, now time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("status = ? AND created_at < ?", notification.Pending.String(), cutoff)

	return r.expire(query, now)
}

func (r *GormNotificationRepository) expire(query *gorm.DB, now time.Time) (int64, error) {
	result := query.Updates(map[string]any{
		"status":       notification.Expired.String(),
		"responded_at": now,
	})
	if result.Error != nil {
		return 0, pgerrs.Translate(result.Error)
	}
	return result.RowsAffected, nil
}
