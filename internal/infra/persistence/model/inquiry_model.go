package model

import (
	"time"

	"bites/internal/domain/entity"

	"github.com/google/uuid"
)

// InquiryModel is the stored form of an inquiry.
type InquiryModel struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	CustomerUID  string    `json:"customer_uid,omitempty"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromInquiryDomain converts an entity to its storage form.
func FromInquiryDomain(inquiry *entity.Inquiry) *InquiryModel {
	return &InquiryModel{
		ID:           inquiry.ID,
		CustomerName: inquiry.CustomerName,
		CustomerUID:  inquiry.CustomerUID,
		Email:        inquiry.Email,
		Message:      inquiry.Message,
		CreatedAt:    inquiry.CreatedAt,
	}
}

// ToInquiryDomain converts a stored inquiry back to its entity form.
func ToInquiryDomain(m *InquiryModel) *entity.Inquiry {
	return &entity.Inquiry{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		CustomerUID:  m.CustomerUID,
		Email:        m.Email,
		Message:      m.Message,
		CreatedAt:    m.CreatedAt,
	}
}
