package repository

import (
	"context"

	"bites/internal/domain/entity"
)

// ProfileRepository persists the current user profile under a single key.
type ProfileRepository interface {
	// LoadProfile retrieves the stored profile, or nil when none is set.
	LoadProfile(ctx context.Context) (*entity.UserProfile, error)

	// SaveProfile stores the given profile.
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error

	// ClearProfile removes the stored profile. Clearing an absent profile
	// is a no-op.
	ClearProfile(ctx context.Context) error
}
