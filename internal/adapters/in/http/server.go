// Package http exposes the fulfillment engine over a JSON API.
// Controllers only translate requests into commands and results into responses.
package http

import (
	"context"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type (
	BusinessRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterBusinessCommand) error
	}

	CourierCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) error
	}

	ProductAdder interface {
		Handle(ctx context.Context, cmd commands.AddProductCommand) error
	}

	CartItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) error
	}

	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}

	InboxReader interface {
		Handle(ctx context.Context, query queries.GetCourierNotificationsQuery) ([]queries.CourierNotificationResponse, error)
	}
)

// Handlers lists everything the controllers delegate to.
type Handlers struct {
	Fulfillment      commands.FulfillmentService
	RegisterBusiness BusinessRegistrar
	CreateCourier    CourierCreator
	AddProduct       ProductAdder
	AddCartItem      CartItemAdder
	GetOrder         OrderReader
	GetInbox         InboxReader
}

// Server holds the controllers for the /api/v1 routes.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/businesses", s.RegisterBusiness)
	v1.POST("/businesses/:id/cart/items", s.AddCartItem)
	v1.POST("/businesses/:id/cart/checkout", s.CheckoutCart)

	v1.POST("/couriers", s.CreateCourier)
	v1.GET("/couriers/:id/notifications", s.GetCourierNotifications)

	v1.POST("/products", s.AddProduct)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/fan-out", s.FanOut)

	v1.POST("/notifications/:id/accept", s.AcceptNotification)
	v1.POST("/notifications/:id/reject", s.RejectNotification)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
