// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bites/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler    *handler.MenuHandler
	CanteenHandler *handler.CanteenHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	InquiryHandler *handler.InquiryHandler
	SessionHandler *handler.SessionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Storefront
	e.GET("/menu", r.params.MenuHandler.GetMenu)
	e.GET("/status", r.params.CanteenHandler.GetStatus)

	// Cart
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.params.CartHandler.ChangeQuantity)
		cartGroup.DELETE("/items/:id", r.params.CartHandler.RemoveItem)
	}

	// Orders
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.params.OrderHandler.Checkout)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
	}

	// Inquiries
	e.POST("/inquiries", r.params.InquiryHandler.Submit)

	// Local profile
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.SessionHandler.Login)
		authGroup.POST("/logout", r.params.SessionHandler.Logout)
		authGroup.GET("/profile", r.params.SessionHandler.Profile)
	}

	// Manager dashboard
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/orders", r.params.AdminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.params.AdminHandler.UpdateStatus)
		adminGroup.GET("/inquiries", r.params.AdminHandler.ListInquiries)
	}
}
