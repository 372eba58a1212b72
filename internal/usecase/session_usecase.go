package usecase

import (
	"context"

	"bites/internal/domain/entity"
)

// LoginInput carries the self-declared identity of the customer.
type LoginInput struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// SessionUsecase manages the optional local user profile. Presence of a
// profile gates the membership discount.
type SessionUsecase interface {
	// Login stores the profile and mirrors it to persistent storage.
	Login(ctx context.Context, input *LoginInput) (*entity.UserProfile, error)

	// Logout clears the profile, both in memory and in storage.
	Logout(ctx context.Context) error

	// Current returns the active profile, or nil when logged out.
	Current(ctx context.Context) *entity.UserProfile
}
