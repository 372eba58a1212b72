package keyval

import (
	"context"

	"bites/config"
	"bites/internal/errors"
)

// New selects the store provider from configuration.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Provider {
	case "file":
		return NewFileStore(cfg.Storage.Path)
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		if cfg.Storage.Redis == nil {
			return nil, errors.New("redis storage provider selected but not configured")
		}

		return NewRedisStore(ctx, cfg.Storage.Redis)
	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}
}
