// Package respond maps service fault codes to HTTP responses, one scheme
// for every controller.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"itemshare/util/fault"
)

func Error(c echo.Context, log *slog.Logger, op string, err error) error {
	code := fault.CodeOf(err)
	if code == "" {
		log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(statusOf(code), echo.Map{"message": err.Error()})
}

func statusOf(code fault.Code) int {
	switch code {
	case fault.UserNotFound, fault.ItemNotFound, fault.BookingNotFound, fault.RequestNotFound:
		return http.StatusNotFound
	case fault.EmailAlreadyExists, fault.BookingStatusAlreadySet:
		return http.StatusConflict
	case fault.ItemOwnerMismatch:
		return http.StatusForbidden
	default:
		// ItemNotAvailable, ItemRenterRequired, BookingEndDateInvalid, UnknownState
		return http.StatusBadRequest
	}
}
