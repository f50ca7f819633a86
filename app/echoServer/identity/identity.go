// Package identity extracts the caller's user id from the shared-user
// header set by the gateway.
package identity

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const Header = "X-Sharer-User-Id"

const ctxKey = "user_id"

// Middleware requires a positive integer user id header on every request
// in the group.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(Header)
			if raw == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing " + Header + " header"})
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid " + Header + " header"})
			}
			c.Set(ctxKey, id)
			return next(c)
		}
	}
}

func UserID(c echo.Context) int64 {
	id, _ := c.Get(ctxKey).(int64)
	return id
}
