package repository

import (
	"context"

	"bites/internal/domain/entity"
)

// InquiryRepository persists the inquiry history as one whole collection,
// most-recent-first.
type InquiryRepository interface {
	// LoadInquiries retrieves the full inquiry history.
	LoadInquiries(ctx context.Context) ([]*entity.Inquiry, error)

	// SaveInquiries replaces the stored inquiry history with the given collection.
	SaveInquiries(ctx context.Context, inquiries []*entity.Inquiry) error
}
