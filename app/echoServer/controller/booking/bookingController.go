package booking

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"itemshare/app/echoServer/controller/respond"
	"itemshare/app/echoServer/identity"
	"itemshare/app/echoServer/paging"
	bookingsvc "itemshare/service/booking"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /bookings
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	// Window shape checks the gateway used to do: start now-or-future,
	// end strictly in the future.
	now := time.Now()
	if req.Start.Before(now) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "start must not be in the past"})
	}
	if !req.End.After(now) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "end must be in the future"})
	}

	b, err := h.Svc.Create(c.Request().Context(), identity.UserID(c), req.ItemID, req.Start, req.End)
	if err != nil {
		return respond.Error(c, h.Log, "booking create", err)
	}
	return c.JSON(http.StatusCreated, b)
}

// PATCH /bookings/:id?approved=bool
func (h *Controller) Approve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "approved must be true or false"})
	}

	b, err := h.Svc.Approve(c.Request().Context(), identity.UserID(c), id, approved)
	if err != nil {
		return respond.Error(c, h.Log, "booking approve", err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	b, err := h.Svc.Get(c.Request().Context(), identity.UserID(c), id)
	if err != nil {
		return respond.Error(c, h.Log, "booking get", err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings?state&from&size
func (h *Controller) ListByBooker(c echo.Context) error {
	p, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	bookings, err := h.Svc.ListByBooker(c.Request().Context(), identity.UserID(c), c.QueryParam("state"), p.From, p.Size)
	if err != nil {
		return respond.Error(c, h.Log, "booking list", err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// GET /bookings/owner?state&from&size
func (h *Controller) ListByOwner(c echo.Context) error {
	p, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	bookings, err := h.Svc.ListByOwner(c.Request().Context(), identity.UserID(c), c.QueryParam("state"), p.From, p.Size)
	if err != nil {
		return respond.Error(c, h.Log, "booking owner list", err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
