package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type (
	NamedInCity struct {
		Name string `json:"name"`
		City string `json:"city"`
	}

	NewProduct struct {
		SupplierID string `json:"supplierId"`
		Name       string `json:"name"`
		Price      string `json:"price"`
		Quantity   int    `json:"quantity"`
	}

	OrderLine struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	NewOrder struct {
		RequesterID string      `json:"requesterId"`
		SupplierID  string      `json:"supplierId"`
		Items       []OrderLine `json:"items"`
	}

	StatusChange struct {
		Status         string  `json:"status"`
		DeliveryStatus *string `json:"deliveryStatus,omitempty"`
	}

	CourierRef struct {
		CourierID string `json:"courierId"`
	}

	Created struct {
		ID string `json:"id"`
	}
)

type (
	OrderItem struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		UnitPrice string `json:"unitPrice"`
		Subtotal  string `json:"subtotal"`
	}

	Order struct {
		ID             string      `json:"id"`
		RequesterID    string      `json:"requesterId"`
		SupplierID     string      `json:"supplierId"`
		Status         string      `json:"status"`
		DeliveryStatus string      `json:"deliveryStatus"`
		Total          string      `json:"total"`
		CourierID      *string     `json:"courierId,omitempty"`
		Items          []OrderItem `json:"items"`
		CreatedAt      time.Time   `json:"createdAt"`
		UpdatedAt      time.Time   `json:"updatedAt"`
	}

	FanOut struct {
		Outcome         string   `json:"outcome"`
		NotificationIDs []string `json:"notificationIds"`
	}

	StatusChanged struct {
		Order                Order   `json:"order"`
		FanOut               *FanOut `json:"fanOut,omitempty"`
		NotificationDeferred bool    `json:"notificationDeferred"`
	}

	SupplierFailure struct {
		SupplierID string `json:"supplierId"`
		Kind       string `json:"kind"`
		Message    string `json:"message"`
	}

	Checkout struct {
		Placed []Order           `json:"placed"`
		Failed []SupplierFailure `json:"failed"`
	}

	InboxEntry struct {
		NotificationID string    `json:"notificationId"`
		OrderID        string    `json:"orderId"`
		OrderTotal     string    `json:"orderTotal"`
		RequesterCity  string    `json:"requesterCity"`
		SupplierCity   string    `json:"supplierCity"`
		CreatedAt      time.Time `json:"createdAt"`
	}
)

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Subtotal:  item.Subtotal().String(),
		})
	}

	return Order{
		ID:             o.ID().String(),
		RequesterID:    o.RequesterID().String(),
		SupplierID:     o.SupplierID().String(),
		Status:         o.Status().String(),
		DeliveryStatus: o.DeliveryStatus().String(),
		Total:          o.Total().String(),
		CourierID:      idString(o.Courier()),
		Items:          items,
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func orderFromQuery(r *queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal.StringFixed(2),
		})
	}

	return Order{
		ID:             r.ID.String(),
		RequesterID:    r.RequesterID.String(),
		SupplierID:     r.SupplierID.String(),
		Status:         r.Status,
		DeliveryStatus: r.DeliveryStatus,
		Total:          r.Total.StringFixed(2),
		CourierID:      idString(r.CourierID),
		Items:          items,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func fanOutFromResult(r commands.FanOutResult) FanOut {
	ids := make([]string, 0, len(r.Notifications))
	for _, n := range r.Notifications {
		ids = append(ids, n.ID().String())
	}
	return FanOut{Outcome: string(r.Outcome), NotificationIDs: ids}
}

func checkoutFromResult(r commands.CheckoutResult) Checkout {
	resp := Checkout{Placed: make([]Order, 0), Failed: make([]SupplierFailure, 0)}
	for _, o := range r.Placed() {
		resp.Placed = append(resp.Placed, orderFromDomain(o))
	}
	for _, f := range r.Failed() {
		resp.Failed = append(resp.Failed, SupplierFailure{
			SupplierID: f.SupplierID.String(),
			Kind:       string(f.ErrorKind),
			Message:    f.ErrorKind.Message(),
		})
	}
	return resp
}

func inboxFromQuery(rows []queries.CourierNotificationResponse) []InboxEntry {
	inbox := make([]InboxEntry, 0, len(rows))
	for _, r := range rows {
		inbox = append(inbox, InboxEntry{
			NotificationID: r.NotificationID.String(),
			OrderID:        r.OrderID.String(),
			OrderTotal:     r.OrderTotal.StringFixed(2),
			RequesterCity:  r.RequesterCity,
			SupplierCity:   r.SupplierCity,
			CreatedAt:      r.CreatedAt,
		})
	}
	return inbox
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
