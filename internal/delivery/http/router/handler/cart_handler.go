package handler

import (
	"net/http"
	"strconv"

	"bites/internal/delivery/http/response"
	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	"bites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddItemRequest represents the request body for adding a menu item
type AddItemRequest struct {
	ItemID int `json:"item_id" validate:"required"`
}

// ChangeQuantityRequest represents the request body for adjusting a line
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// AddItem handles adding one unit of a menu item to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.cartUC.AddItem(c.Request().Context(), req.ItemID); err != nil {
		return err
	}

	return h.renderCart(c, http.StatusOK, "Item added to cart")
}

// ChangeQuantity handles adjusting a cart line's quantity by a delta
func (h *CartHandler) ChangeQuantity(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	h.cartUC.ChangeQuantity(c.Request().Context(), itemID, req.Delta)

	return h.renderCart(c, http.StatusOK, "Cart updated")
}

// RemoveItem handles deleting a cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	h.cartUC.RemoveItem(c.Request().Context(), itemID)

	return h.renderCart(c, http.StatusOK, "Item removed from cart")
}

// GetCart handles retrieving the cart with totals for the requested mode
func (h *CartHandler) GetCart(c echo.Context) error {
	return h.renderCart(c, http.StatusOK, "Cart retrieved successfully")
}

func (h *CartHandler) renderCart(c echo.Context, statusCode int, message string) error {
	mode, err := parseFulfillmentMode(c.QueryParam("mode"))
	if err != nil {
		return err
	}

	view := h.cartUC.View(c.Request().Context(), mode)

	return response.Success(c, statusCode, view, message)
}

// parseFulfillmentMode maps the wire value to the domain enum; empty
// defaults to pickup.
func parseFulfillmentMode(raw string) (entity.FulfillmentMode, error) {
	switch raw {
	case "", string(entity.ModePickup):
		return entity.ModePickup, nil
	case string(entity.ModeDelivery):
		return entity.ModeDelivery, nil
	default:
		return "", domainerrors.ErrInvalidFulfillmentMode
	}
}
