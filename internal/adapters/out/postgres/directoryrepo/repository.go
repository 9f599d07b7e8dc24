package directoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/business"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDirectory implements Directory using GORM.
type GormDirectory struct {
	db *gorm.DB
}

var _ ports.Directory = (*GormDirectory)(nil)

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (r *GormDirectory) AddBusiness(ctx context.Context, b *business.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}
	dto := businessFromDomain(b)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormDirectory) AddCourier(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := courierFromDomain(c)
	// Select all columns so an unavailable courier is not written as the default true.
	return pgerrs.Translate(r.db.WithContext(ctx).Select("*").Create(&dto).Error)
}

func (r *GormDirectory) GetCourier(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}
	if err != nil {
		return nil, pgerrs.Translate(err)
	}
	return courierToDomain(dto)
}

// IsAvailable reads the flag under a row lock, so a concurrent acceptance by the
// same courier waits until this transaction has flipped it.
func (r *GormDirectory) IsAvailable(ctx context.Context, courierID kernel.UUID) (bool, error) {
	if err := courierID.Validate(); err != nil {
		return false, err
	}

	var dto CourierDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "available").
		First(&dto, "id = ?", courierID.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, errs.NewObjectNotFoundError("courier", courierID.String())
	}
	if err != nil {
		return false, pgerrs.Translate(err)
	}
	return dto.Available, nil
}

// CityOf returns the city of a registered business, or of a courier when no
// business has that id.
func (r *GormDirectory) CityOf(ctx context.Context, id kernel.UUID) (kernel.City, error) {
	if err := id.Validate(); err != nil {
		return kernel.City{}, err
	}

	var names []string
	err := r.db.WithContext(ctx).Model(&BusinessDTO{}).Where("id = ?", id.Raw()).Limit(1).Pluck("city_name", &names).Error
	if err != nil {
		return kernel.City{}, pgerrs.Translate(err)
	}
	if len(names) == 0 {
		err = r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", id.Raw()).Limit(1).Pluck("city_name", &names).Error
		if err != nil {
			return kernel.City{}, pgerrs.Translate(err)
		}
	}
	if len(names) == 0 {
		return kernel.City{}, errs.NewObjectNotFoundError("business", id.String())
	}
	return kernel.NewCity(names[0])
}

func (r *GormDirectory) SetAvailability(ctx context.Context, courierID kernel.UUID, available bool) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", courierID.Raw()).
		UpdateColumn("available", available)
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", courierID.String())
	}
	return nil
}

// FindAvailableCouriers returns up to limit available couriers located in any of
// the cities, ordered by id.
func (r *GormDirectory) FindAvailableCouriers(ctx context.Context, cities []kernel.City, limit int) ([]*courier.Courier, error) {
	keys := make([]string, 0, len(cities))
	for _, c := range cities {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, c.Key())
	}
	if len(keys) == 0 || limit <= 0 {
		return []*courier.Courier{}, nil
	}

	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Where("available = ? AND city_key IN ?", true, keys).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := courierToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}
