package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	"bites/internal/domain/repository"
	"bites/internal/usecase"
)

type sessionService struct {
	mu          sync.RWMutex
	profile     *entity.UserProfile
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewSessionService creates the profile manager, restoring any persisted
// profile. A missing or unreadable stored profile degrades to logged out.
func NewSessionService(ctx context.Context, profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.SessionUsecase {
	profile, err := profileRepo.LoadProfile(ctx)
	if err != nil {
		logger.Warn("stored profile unavailable, starting logged out", slog.Any("error", err))
		profile = nil
	}

	return &sessionService{
		profile:     profile,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Login stores the self-declared profile and mirrors it to storage.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.UserProfile, error) {
	name := strings.TrimSpace(input.Name)
	uid := strings.TrimSpace(input.UID)
	if name == "" || uid == "" {
		return nil, domainerrors.ErrProfileIncomplete
	}

	profile := &entity.UserProfile{Name: name, UID: uid}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	// Persistence is fire-and-forget; the in-memory session stays valid
	// even when the mirror write fails.
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("failed to persist profile", slog.Any("error", err))
	}

	out := *profile

	return &out, nil
}

// Logout clears the profile in memory and in storage.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()

	if err := s.profileRepo.ClearProfile(ctx); err != nil {
		s.logger.Error("failed to clear persisted profile", slog.Any("error", err))
	}

	return nil
}

// Current returns the active profile, or nil when logged out.
func (s *sessionService) Current(ctx context.Context) *entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil
	}
	out := *s.profile

	return &out
}
