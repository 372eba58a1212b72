package handler

import (
	"net/http"

	"bites/internal/delivery/http/response"
	"bites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	CartUC    usecase.CartUsecase
}

// SessionHandler holds dependencies for the local profile handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	cartUC    usecase.CartUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		cartUC:    params.CartUC,
	}
}

// LoginRequest represents the request body for declaring a profile
type LoginRequest struct {
	Name string `json:"name" validate:"required"`
	UID  string `json:"uid" validate:"required"`
}

// Login handles storing the self-declared profile
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Name: req.Name,
		UID:  req.UID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "Logged in successfully")
}

// Logout handles clearing the profile. The active cart is discarded with
// the session, matching the kiosk behavior.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	h.cartUC.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// Profile handles retrieving the active profile
func (h *SessionHandler) Profile(c echo.Context) error {
	profile := h.sessionUC.Current(c.Request().Context())
	if profile == nil {
		return response.NotFound(c, "NO_ACTIVE_PROFILE", "Not logged in")
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}
