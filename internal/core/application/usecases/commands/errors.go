package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyAssigned      = errors.New("order already assigned")
	ErrCourierUnavailable   = errors.New("courier unavailable")
	ErrCartIsEmpty          = errors.New("cart is empty")
	// ErrCartChanged means some lines of a supplier group were gone when its order was placed.
	ErrCartChanged = errors.New("cart changed during checkout")
	// ErrCommandIsNotConstructed is wrapped by every command's own not-constructed error.
	ErrCommandIsNotConstructed = errors.New("command is not constructed")
	// ErrTransactionAborted is the store giving up on a transaction; see errs.TransactionAbortedError.
	ErrTransactionAborted = errs.ErrTransactionAborted
)

// ErrorKind is the caller-facing classification of a failed operation.
type ErrorKind string

const (
	KindNone                 ErrorKind = ""
	KindProductNotFound      ErrorKind = "ProductNotFound"
	KindOutOfStock           ErrorKind = "OutOfStock"
	KindOrderNotFound        ErrorKind = "OrderNotFound"
	KindNotificationNotFound ErrorKind = "NotificationNotFound"
	KindNotFound             ErrorKind = "NotFound"
	KindInvalidTransition    ErrorKind = "InvalidTransition"
	KindAlreadyAssigned      ErrorKind = "AlreadyAssigned"
	KindAlreadyResolved      ErrorKind = "AlreadyResolved"
	KindCourierUnavailable   ErrorKind = "CourierUnavailable"
	KindCartChanged          ErrorKind = "CartChanged"
	KindNotAuthorized        ErrorKind = "NotAuthorized"
	KindTransactionAborted   ErrorKind = "TransactionAborted"
	KindInvalidInput         ErrorKind = "InvalidInput"
	KindInternal             ErrorKind = "Internal"
)

var kindMessages = map[ErrorKind]string{
	KindProductNotFound:      "This product is not offered by the selected supplier",
	KindOutOfStock:           "Not enough stock left for this product",
	KindOrderNotFound:        "Order not found",
	KindNotificationNotFound: "Delivery offer not found",
	KindNotFound:             "Not found",
	KindInvalidTransition:    "This status change is not allowed for the order in its current state",
	KindAlreadyAssigned:      "This order was already picked up by another courier",
	KindAlreadyResolved:      "This delivery offer is no longer open",
	KindCourierUnavailable:   "You are marked as unavailable and cannot accept deliveries",
	KindCartChanged:          "These cart items were already checked out or removed",
	KindNotAuthorized:        "This delivery offer was sent to another courier",
	KindTransactionAborted:   "The request collided with another update, please try again",
	KindInvalidInput:         "The request is invalid",
	KindInternal:             "Something went wrong, please try again later",
}

// Message is the end-user text for the kind.
func (k ErrorKind) Message() string {
	return kindMessages[k]
}

// Retryable reports whether the same request may succeed if sent again as-is.
func (k ErrorKind) Retryable() bool {
	return k == KindTransactionAborted
}

// KindOf classifies err. The order of checks matters: a lost acceptance race
// is AlreadyAssigned even though the notification also ended resolved.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, errs.ErrTransactionAborted):
		return KindTransactionAborted
	case errors.Is(err, ErrProductNotFound):
		return KindProductNotFound
	case errors.Is(err, product.ErrOutOfStock):
		return KindOutOfStock
	case errors.Is(err, ErrOrderNotFound):
		return KindOrderNotFound
	case errors.Is(err, ErrNotificationNotFound):
		return KindNotificationNotFound
	case errors.Is(err, ErrAlreadyAssigned):
		return KindAlreadyAssigned
	case errors.Is(err, notification.ErrNotAuthorized):
		return KindNotAuthorized
	case errors.Is(err, notification.ErrAlreadyResolved):
		return KindAlreadyResolved
	case errors.Is(err, ErrCourierUnavailable):
		return KindCourierUnavailable
	case errors.Is(err, ErrCartChanged):
		return KindCartChanged
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, services.ErrOrderNotAwaitingCourier):
		return KindInvalidTransition
	case errors.Is(err, errs.ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrCartIsEmpty),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, guard.ErrDefaultConstructorGuard),
		errors.Is(err, ErrCommandIsNotConstructed):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
