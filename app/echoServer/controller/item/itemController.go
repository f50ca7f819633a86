package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"itemshare/app/echoServer/controller/respond"
	"itemshare/app/echoServer/identity"
	"itemshare/app/echoServer/paging"
	"itemshare/model"
	itemsvc "itemshare/service/item"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid := identity.UserID(c)

	item, err := h.Svc.Create(c.Request().Context(), uid, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return respond.Error(c, h.Log, "item create", err)
	}
	return c.JSON(http.StatusCreated, item)
}

// PATCH /items/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid := identity.UserID(c)

	item, err := h.Svc.Update(c.Request().Context(), uid, id, model.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return respond.Error(c, h.Log, "item update", err)
	}
	return c.JSON(http.StatusOK, item)
}

// GET /items/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	view, err := h.Svc.Get(c.Request().Context(), id, identity.UserID(c))
	if err != nil {
		return respond.Error(c, h.Log, "item get", err)
	}
	return c.JSON(http.StatusOK, view)
}

// GET /items?from&size
func (h *Controller) List(c echo.Context) error {
	p, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	views, err := h.Svc.ListByOwner(c.Request().Context(), identity.UserID(c), p.From, p.Size)
	if err != nil {
		return respond.Error(c, h.Log, "item list", err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /items/search?text&from&size
func (h *Controller) Search(c echo.Context) error {
	p, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	items, err := h.Svc.Search(c.Request().Context(), c.QueryParam("text"), p.From, p.Size)
	if err != nil {
		return respond.Error(c, h.Log, "item search", err)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /items/:id/comment
func (h *Controller) PostComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req PostCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	comment, err := h.Svc.PostComment(c.Request().Context(), identity.UserID(c), id, req.Text)
	if err != nil {
		return respond.Error(c, h.Log, "item comment", err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
