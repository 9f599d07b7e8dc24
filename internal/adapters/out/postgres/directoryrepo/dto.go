// Package directoryrepo persists businesses and couriers: who exists, where they
// are and whether a courier can take work.
package directoryrepo

import (
	"fulfillment/internal/core/domain/model/business"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BusinessDTO is a registered business. CityKey is the normalized city used for matching.
type BusinessDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	CityName string    `gorm:"type:varchar(100);not null"`
	CityKey  string    `gorm:"type:varchar(100);not null;index"`
}

func (BusinessDTO) TableName() string {
	return "businesses"
}

// CourierDTO is a courier row. The (city_key, available) index serves eligibility lookups.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CityName  string    `gorm:"type:varchar(100);not null"`
	CityKey   string    `gorm:"type:varchar(100);not null;index:idx_couriers_city_available,priority:1"`
	Available bool      `gorm:"not null;default:true;index:idx_couriers_city_available,priority:2"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func businessFromDomain(b *business.Business) BusinessDTO {
	return BusinessDTO{
		ID:       b.ID().Raw(),
		Name:     b.Name(),
		CityName: b.City().Name(),
		CityKey:  b.City().Key(),
	}
}

func courierFromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        c.ID().Raw(),
		Name:      c.Name(),
		CityName:  c.City().Name(),
		CityKey:   c.City().Key(),
		Available: c.IsAvailable(),
	}
}

func courierToDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	city, err := kernel.NewCity(dto.CityName)
	if err != nil {
		return nil, err
	}
	return courier.RestoreCourier(id, dto.Name, city, dto.Available)
}
