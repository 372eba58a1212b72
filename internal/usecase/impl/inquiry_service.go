package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	"bites/internal/domain/repository"
	"bites/internal/domain/service"
	"bites/internal/usecase"

	"github.com/google/uuid"
)

type inquiryService struct {
	mu        sync.Mutex
	inquiries []*entity.Inquiry

	inquiryRepo repository.InquiryRepository
	session     usecase.SessionUsecase
	clock       service.Clock
	logger      *slog.Logger
}

// NewInquiryService creates the inquiry manager, restoring the persisted
// history. An unreadable history degrades to empty.
func NewInquiryService(
	ctx context.Context,
	inquiryRepo repository.InquiryRepository,
	session usecase.SessionUsecase,
	clock service.Clock,
	logger *slog.Logger,
) usecase.InquiryUsecase {
	inquiries, err := inquiryRepo.LoadInquiries(ctx)
	if err != nil {
		logger.Warn("stored inquiry history unavailable, starting empty", slog.Any("error", err))
		inquiries = nil
	}

	return &inquiryService{
		inquiries:   inquiries,
		inquiryRepo: inquiryRepo,
		session:     session,
		clock:       clock,
		logger:      logger,
	}
}

// Submit records a new inquiry at the head of the history.
func (s *inquiryService) Submit(ctx context.Context, input *usecase.SubmitInquiryInput) (*entity.Inquiry, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	inquiry := &entity.Inquiry{
		ID:           uuid.New(),
		CustomerName: entity.GuestName,
		Email:        strings.TrimSpace(input.Email),
		Message:      message,
		CreatedAt:    s.clock.Now(),
	}
	if profile := s.session.Current(ctx); profile != nil {
		inquiry.CustomerName = profile.Name
		inquiry.CustomerUID = profile.UID
	}

	s.mu.Lock()
	s.inquiries = append([]*entity.Inquiry{inquiry}, s.inquiries...)
	if err := s.inquiryRepo.SaveInquiries(ctx, s.inquiries); err != nil {
		s.logger.Error("failed to persist inquiry history", slog.Any("error", err))
	}
	s.mu.Unlock()

	out := *inquiry

	return &out, nil
}

// List returns the inquiry history, most recent first.
func (s *inquiryService) List(ctx context.Context) []*entity.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Inquiry, len(s.inquiries))
	for i, inquiry := range s.inquiries {
		copied := *inquiry
		out[i] = &copied
	}

	return out
}
