package handler

import (
	"net/http"

	"bites/internal/delivery/http/response"
	"bites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// CheckoutRequest represents the request body for placing an order
type CheckoutRequest struct {
	Mode     string `json:"mode" validate:"required,oneof=pickup delivery"`
	Location string `json:"location"`
}

// Checkout handles converting the cart into a placed order
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	mode, err := parseFulfillmentMode(req.Mode)
	if err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		Mode:     mode,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders handles retrieving the order history, most recent first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders := h.orderUC.ListOrders(c.Request().Context())

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles retrieving one order for status tracking
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}
