// Package productrepo persists the product catalog and performs stock decrements.
package productrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductDTO is a catalog row. The check constraint keeps stock from ever going negative.
type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity   int             `gorm:"not null;check:chk_products_quantity_non_negative,quantity >= 0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Raw(),
		SupplierID: p.SupplierID().Raw(),
		Name:       p.Name(),
		Price:      p.Price().Amount(),
		Quantity:   p.Quantity(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromRaw(dto.SupplierID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(id, supplierID, dto.Name, price, dto.Quantity)
}

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

var _ ports.ProductCatalog = (*GormProductCatalog)(nil)

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

func (r *GormProductCatalog) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := fromDomain(p)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormProductCatalog) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate locks the product row, serializing reservations of the same product.
func (r *GormProductCatalog) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormProductCatalog) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	if err != nil {
		return nil, pgerrs.Translate(err)
	}
	return toDomain(dto)
}

// DecrementQuantity subtracts quantity only while enough stock is left, so the
// row can never be oversold even by a caller that skipped the lock.
func (r *GormProductCatalog) DecrementQuantity(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND quantity >= ?", id.Raw(), quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		if pgerrs.Code(result.Error) == pgerrs.CodeCheckViolation {
			return fmt.Errorf("%w: %s", product.ErrOutOfStock, id)
		}
		return pgerrs.Translate(result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id.Raw()).Count(&count).Error; err != nil {
		return pgerrs.Translate(err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return fmt.Errorf("%w: %s has fewer than %d units", product.ErrOutOfStock, id, quantity)
}
