// Package handler contains the HTTP handlers of the delivery layer.
package handler

import (
	"net/http"

	"bites/internal/delivery/http/response"
	"bites/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	Catalog *entity.Catalog
}

// MenuHandler serves the read-only menu.
type MenuHandler struct {
	catalog *entity.Catalog
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{catalog: params.Catalog}
}

// GetMenu handles retrieving the full menu
func (h *MenuHandler) GetMenu(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Items(), "Menu retrieved successfully")
}
