package echoServer

import (
	"github.com/labstack/echo/v4"

	"itemshare/app/echoServer/controller/booking"
	"itemshare/app/echoServer/controller/item"
	"itemshare/app/echoServer/controller/request"
	"itemshare/app/echoServer/controller/user"
	"itemshare/app/echoServer/identity"
)

type C struct {
	User    *user.Controller
	Item    *item.Controller
	Booking *booking.Controller
	Request *request.Controller
}

func Register(e *echo.Echo, c C) {
	// User directory endpoints carry no caller identity; user ids are
	// minted here.
	users := e.Group("/users")
	users.POST("", c.User.Create)
	users.PATCH("/:id", c.User.Update)
	users.GET("/:id", c.User.Get)
	users.DELETE("/:id", c.User.Delete)
	users.GET("", c.User.List)

	items := e.Group("/items", identity.Middleware())
	items.POST("", c.Item.Create)
	items.PATCH("/:id", c.Item.Update)
	items.GET("/search", c.Item.Search)
	items.GET("/:id", c.Item.Get)
	items.GET("", c.Item.List)
	items.POST("/:id/comment", c.Item.PostComment)

	bookings := e.Group("/bookings", identity.Middleware())
	bookings.POST("", c.Booking.Create)
	bookings.PATCH("/:id", c.Booking.Approve)
	bookings.GET("/owner", c.Booking.ListByOwner)
	bookings.GET("/:id", c.Booking.Get)
	bookings.GET("", c.Booking.ListByBooker)

	requests := e.Group("/requests", identity.Middleware())
	requests.POST("", c.Request.Create)
	requests.GET("/all", c.Request.ListOthers)
	requests.GET("/:id", c.Request.Get)
	requests.GET("", c.Request.ListOwn)
}
