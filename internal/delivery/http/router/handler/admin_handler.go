package handler

import (
	"net/http"

	"bites/internal/delivery/http/response"
	"bites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	InquiryUC usecase.InquiryUsecase
}

// AdminHandler serves the manager dashboard: the order table with manual
// status control, and the inquiry inbox.
type AdminHandler struct {
	orderUC   usecase.OrderUsecase
	inquiryUC usecase.InquiryUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		orderUC:   params.OrderUC,
		inquiryUC: params.InquiryUC,
	}
}

// UpdateStatusRequest represents the request body for a manual transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders handles retrieving all orders for the manager table
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders := h.orderUC.ListOrders(c.Request().Context())

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles a manual, forward-only order status transition
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// ListInquiries handles retrieving the inquiry history, most recent first
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	inquiries := h.inquiryUC.List(c.Request().Context())

	return response.Success(c, http.StatusOK, inquiries, "Inquiries retrieved successfully")
}
