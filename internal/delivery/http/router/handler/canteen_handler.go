package handler

import (
	"net/http"

	"bites/internal/delivery/http/response"
	"bites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CanteenHandlerParams holds dependencies for CanteenHandler, injected by Fx.
type CanteenHandlerParams struct {
	fx.In

	CanteenUC usecase.CanteenUsecase
}

// CanteenHandler serves the open/closed status. The UI polls this to
// disable ordering controls outside the operating window.
type CanteenHandler struct {
	canteenUC usecase.CanteenUsecase
}

// NewCanteenHandler is the constructor for CanteenHandler
func NewCanteenHandler(params CanteenHandlerParams) *CanteenHandler {
	return &CanteenHandler{canteenUC: params.CanteenUC}
}

// GetStatus handles retrieving the canteen open/closed status
func (h *CanteenHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.canteenUC.Status(), "Canteen status retrieved successfully")
}
