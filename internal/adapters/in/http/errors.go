package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var kindStatus = map[commands.ErrorKind]int{
	commands.KindProductNotFound:      http.StatusNotFound,
	commands.KindOrderNotFound:        http.StatusNotFound,
	commands.KindNotificationNotFound: http.StatusNotFound,
	commands.KindNotFound:             http.StatusNotFound,
	commands.KindAlreadyAssigned:      http.StatusConflict,
	commands.KindAlreadyResolved:      http.StatusConflict,
	commands.KindInvalidTransition:    http.StatusConflict,
	commands.KindCartChanged:          http.StatusConflict,
	commands.KindOutOfStock:           http.StatusUnprocessableEntity,
	commands.KindCourierUnavailable:   http.StatusUnprocessableEntity,
	commands.KindNotAuthorized:        http.StatusForbidden,
	commands.KindTransactionAborted:   http.StatusServiceUnavailable,
	commands.KindInvalidInput:         http.StatusBadRequest,
	commands.KindInternal:             http.StatusInternalServerError,
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind commands.ErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// fail writes err as an Error body. Invalid input carries the validation
// detail, every other kind only its end-user message.
func fail(c echo.Context, err error) error {
	kind := commands.KindOf(err)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		kind = commands.KindInvalidInput
	}

	status := StatusOf(kind)
	message := kind.Message()
	if kind == commands.KindInvalidInput {
		message += ": " + err.Error()
	}
	if kind == commands.KindTransactionAborted {
		c.Response().Header().Set("Retry-After", "1")
	}

	return c.JSON(status, Error{Code: status, Kind: string(kind), Message: message})
}

func invalid(param string, cause error) error {
	return errs.NewValueIsInvalidErrorWithCause(param, cause)
}
