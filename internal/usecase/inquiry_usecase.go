package usecase

import (
	"context"

	"bites/internal/domain/entity"
)

// SubmitInquiryInput carries a customer support message.
type SubmitInquiryInput struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// InquiryUsecase manages the append-only inquiry history.
type InquiryUsecase interface {
	// Submit records a new inquiry at the head of the history, attributed
	// to the current profile or to the guest sentinel.
	Submit(ctx context.Context, input *SubmitInquiryInput) (*entity.Inquiry, error)

	// List returns the inquiry history, most recent first.
	List(ctx context.Context) []*entity.Inquiry
}
