package postgres

import (
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/trackingrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the engine, children before parents.
var Tables = []string{
	"delivery_tracking",
	"notifications",
	"order_items",
	"orders",
	"cart_items",
	"products",
	"couriers",
	"businesses",
}

// Migrate applies the schema of every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&directoryrepo.BusinessDTO{},
		&directoryrepo.CourierDTO{},
		&productrepo.ProductDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&notificationrepo.NotificationDTO{},
		&trackingrepo.TrackingDTO{},
	)
}
