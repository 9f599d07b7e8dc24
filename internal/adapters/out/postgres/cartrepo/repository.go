// Package cartrepo persists cart lines of requesting businesses.
package cartrepo

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_business_created,priority:1"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null;check:chk_cart_items_quantity_positive,quantity > 0"`
	CreatedAt  time.Time `gorm:"not null;index:idx_cart_items_business_created,priority:2"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.BusinessID, dto.SupplierID, dto.ProductID} {
		id, err := kernel.UUIDFromRaw(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return cart.NewItem(ids[0], ids[1], ids[2], ids[3], dto.Quantity)
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

var _ ports.CartRepository = (*GormCartRepository)(nil)

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	dto := CartItemDTO{
		ID:         item.ID().Raw(),
		BusinessID: item.BusinessID().Raw(),
		SupplierID: item.SupplierID().Raw(),
		ProductID:  item.ProductID().Raw(),
		Quantity:   item.Quantity(),
		CreatedAt:  time.Now().UTC(),
	}
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCartRepository) ListByBusiness(ctx context.Context, businessID kernel.UUID) ([]*cart.Item, error) {
	if err := businessID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID.Raw()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, item)
	}
	return items, nil
}

// Remove deletes the given lines and reports the number of rows deleted.
// Unknown ids are not counted. A concurrent Remove of the same lines blocks
// on their row locks until the other transaction ends.
func (r *GormCartRepository) Remove(ctx context.Context, ids []kernel.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		raw = append(raw, id.Raw())
	}

	result := r.db.WithContext(ctx).Where("id IN ?", raw).Delete(&CartItemDTO{})
	if result.Error != nil {
		return 0, pgerrs.Translate(result.Error)
	}
	return result.RowsAffected, nil
}
