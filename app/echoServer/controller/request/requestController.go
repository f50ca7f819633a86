package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"itemshare/app/echoServer/controller/respond"
	"itemshare/app/echoServer/identity"
	"itemshare/app/echoServer/paging"
	requestsvc "itemshare/service/request"
)

type Controller struct {
	Svc requestsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	r, err := h.Svc.Create(c.Request().Context(), identity.UserID(c), req.Description)
	if err != nil {
		return respond.Error(c, h.Log, "request create", err)
	}
	return c.JSON(http.StatusCreated, r)
}

// GET /requests
func (h *Controller) ListOwn(c echo.Context) error {
	views, err := h.Svc.ListOwn(c.Request().Context(), identity.UserID(c))
	if err != nil {
		return respond.Error(c, h.Log, "request list own", err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /requests/all?from&size
func (h *Controller) ListOthers(c echo.Context) error {
	p, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	views, err := h.Svc.ListOthers(c.Request().Context(), identity.UserID(c), p.From, p.Size)
	if err != nil {
		return respond.Error(c, h.Log, "request list others", err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /requests/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	view, err := h.Svc.Get(c.Request().Context(), identity.UserID(c), id)
	if err != nil {
		return respond.Error(c, h.Log, "request get", err)
	}
	return c.JSON(http.StatusOK, view)
}
