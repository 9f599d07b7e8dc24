package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// RegisterBusiness handles POST /api/v1/businesses.
func (s *Server) RegisterBusiness(c echo.Context) error {
	var req NamedInCity
	if err := c.Bind(&req); err != nil {
		return fail(c, err)
	}
	city, err := kernel.NewCity(req.City)
	if err != nil {
		return fail(c, invalid("city", err))
	}
	cmd, err := commands.NewRegisterBusinessCommand(req.Name, city)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.RegisterBusiness.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: cmd.BusinessID().String()})
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var req NamedInCity
	if err := c.Bind(&req); err != nil {
		return fail(c, err)
	}
	city, err := kernel.NewCity(req.City)
	if err != nil {
		return fail(c, invalid("city", err))
	}
	cmd, err := commands.NewCreateCourierCommand(req.Name, city)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.CreateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: cmd.CourierID().String()})
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(c echo.Context) error {
	var req NewProduct
	if err := c.Bind(&req); err != nil {
		return fail(c, err)
	}
	supplierID, err := parseID("supplierId", req.SupplierID)
	if err != nil {
		return fail(c, err)
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return fail(c, invalid("price", err))
	}
	cmd, err := commands.NewAddProductCommand(supplierID, req.Name, price, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.AddProduct.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: cmd.ProductID().String()})
}

// CreateOrder handles POST /api/v1/orders. One line places a simple order,
// several lines a bulk order reserved all-or-nothing.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrder
	if err := c.Bind(&req); err != nil {
		return fail(c, err)
	}
	requesterID, err := parseID("requesterId", req.RequesterID)
	if err != nil {
		return fail(c, err)
	}
	supplierID, err := parseID("supplierId", req.SupplierID)
	if err != nil {
		return fail(c, err)
	}
	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, parseErr := parseID("productId", item.ProductID)
		if parseErr != nil {
			return fail(c, parseErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	ctx := c.Request().Context()
	var placed *order.Order
	if len(lines) == 1 {
		cmd, cmdErr := commands.NewCreateOrderCommand(requesterID, supplierID, lines[0].ProductID, lines[0].Quantity)
		if cmdErr != nil {
			return fail(c, cmdErr)
		}
		placed, err = s.h.Fulfillment.CreateOrder(ctx, cmd)
	} else {
		cmd, cmdErr := commands.NewCreateBulkOrderCommand(requesterID, supplierID, lines)
		if cmdErr != nil {
			return fail(c, cmdErr)
		}
		placed, err = s.h.Fulfillment.CreateBulkOrder(ctx, cmd)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(c, err)
	}
	detail, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromQuery(detail))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	var req StatusChange
	if err = c.Bind(&req); err != nil {
		return fail(c, err)
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return fail(c, invalid("status", err))
	}
	var deliveryStatus *order.DeliveryStatus
	if req.DeliveryStatus != nil {
		ds, parseErr := order.ParseDeliveryStatus(*req.DeliveryStatus)
		if parseErr != nil {
			return fail(c, invalid("deliveryStatus", parseErr))
		}
		deliveryStatus = &ds
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, deliveryStatus)
	if err != nil {
		return fail(c, err)
	}

	result, err := s.h.Fulfillment.UpdateOrderStatus(c.Request().Context(), cmd)
	if err != nil {
		return fail(c, err)
	}

	resp := StatusChanged{Order: orderFromDomain(result.Order), NotificationDeferred: result.NotificationDeferred}
	if result.FanOut != nil {
		fanOut := fanOutFromResult(*result.FanOut)
		resp.FanOut = &fanOut
	}
	return c.JSON(http.StatusOK, resp)
}

// FanOut handles POST /api/v1/orders/:id/fan-out.
func (s *Server) FanOut(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	cmd, err := commands.NewFanOutCommand(orderID)
	if err != nil {
		return fail(c, err)
	}
	result, err := s.h.Fulfillment.FanOut(c.Request().Context(), cmd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fanOutFromResult(result))
}

// AcceptNotification handles POST /api/v1/notifications/:id/accept.
func (s *Server) AcceptNotification(c echo.Context) error {
	notificationID, courierID, err := s.notificationAndCourier(c)
	if err != nil {
		return fail(c, err)
	}
	cmd, err := commands.NewAcceptNotificationCommand(notificationID, courierID)
	if err != nil {
		return fail(c, err)
	}
	result, err := s.h.Fulfillment.AcceptNotification(c.Request().Context(), cmd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(result.Order))
}

// RejectNotification handles POST /api/v1/notifications/:id/reject.
func (s *Server) RejectNotification(c echo.Context) error {
	notificationID, courierID, err := s.notificationAndCourier(c)
	if err != nil {
		return fail(c, err)
	}
	cmd, err := commands.NewRejectNotificationCommand(notificationID, courierID)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.Fulfillment.RejectNotification(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCourierNotifications handles GET /api/v1/couriers/:id/notifications.
func (s *Server) GetCourierNotifications(c echo.Context) error {
	courierID, err := parseID("courierId", c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	query, err := queries.NewGetCourierNotificationsQuery(courierID)
	if err != nil {
		return fail(c, err)
	}
	inbox, err := s.h.GetInbox.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, inboxFromQuery(inbox))
}

// AddCartItem handles POST /api/v1/businesses/:id/cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	requesterID, err := parseID("businessId", c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	var req OrderLine
	if err = c.Bind(&req); err != nil {
		return fail(c, err)
	}
	productID, err := parseID("productId", req.ProductID)
	if err != nil {
		return fail(c, err)
	}
	cmd, err := commands.NewAddCartItemCommand(requesterID, productID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: cmd.ItemID().String()})
}

// CheckoutCart handles POST /api/v1/businesses/:id/cart/checkout. A partly
// failed checkout is still 200; failed supplier groups are listed in the body.
func (s *Server) CheckoutCart(c echo.Context) error {
	requesterID, err := parseID("businessId", c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	cmd, err := commands.NewCheckoutCartCommand(requesterID)
	if err != nil {
		return fail(c, err)
	}
	result, err := s.h.Fulfillment.CheckoutCart(c.Request().Context(), cmd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, checkoutFromResult(result))
}

func (s *Server) notificationAndCourier(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	notificationID, err := parseID("notificationId", c.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	var req CourierRef
	if err = c.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	courierID, err := parseID("courierId", req.CourierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return notificationID, courierID, nil
}

func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, invalid(param, err)
	}
	return id, nil
}
