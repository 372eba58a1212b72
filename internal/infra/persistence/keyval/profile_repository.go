package keyval

import (
	"context"
	"encoding/json"
	"log/slog"

	"bites/internal/domain/entity"
	"bites/internal/domain/repository"
	"bites/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	store  Store
	logger *slog.Logger
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store Store, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{store: store, logger: logger}
}

// LoadProfile retrieves the stored profile, or nil when none is set. A
// malformed stored profile degrades to logged out.
func (repo *profileRepository) LoadProfile(ctx context.Context) (*entity.UserProfile, error) {
	data, err := repo.store.Get(ctx, ProfileKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load profile")
	}

	var m model.ProfileModel
	if err := json.Unmarshal(data, &m); err != nil {
		repo.logger.Warn("malformed profile in storage, starting logged out",
			slog.Any("error", err))

		return nil, nil
	}

	return model.ToProfileDomain(&m), nil
}

// SaveProfile stores the given profile.
func (repo *profileRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	data, err := json.Marshal(model.FromProfileDomain(profile))
	if err != nil {
		return errors.Wrap(err, "marshal profile")
	}

	return repo.store.Set(ctx, ProfileKey, data)
}

// ClearProfile removes the stored profile.
func (repo *profileRepository) ClearProfile(ctx context.Context) error {
	return repo.store.Delete(ctx, ProfileKey)
}
