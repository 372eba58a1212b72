package handler

import (
	"net/http"

	"bites/internal/delivery/http/response"
	"bites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InquiryHandlerParams holds dependencies for InquiryHandler, injected by Fx.
type InquiryHandlerParams struct {
	fx.In

	InquiryUC usecase.InquiryUsecase
}

// InquiryHandler holds dependencies for inquiry-related handlers
type InquiryHandler struct {
	inquiryUC usecase.InquiryUsecase
}

// NewInquiryHandler is the constructor for InquiryHandler
func NewInquiryHandler(params InquiryHandlerParams) *InquiryHandler {
	return &InquiryHandler{inquiryUC: params.InquiryUC}
}

// SubmitInquiryRequest represents the request body for a support message
type SubmitInquiryRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit handles recording a new customer inquiry
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req SubmitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inquiry, err := h.inquiryUC.Submit(c.Request().Context(), &usecase.SubmitInquiryInput{
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, inquiry, "Inquiry submitted successfully")
}
