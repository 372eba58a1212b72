// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"bites/config"
	"bites/internal/domain/entity"
	"bites/internal/domain/service"
	"bites/internal/usecase"
)

type canteenService struct {
	hours  entity.OpeningHours
	clock  service.Clock
	logger *slog.Logger
	open   atomic.Bool
}

// NewCanteenService creates the operating-hours gate. The returned service
// answers from a cached flag; Refresh re-evaluates the flag against the
// clock and is driven on an interval by the status poller.
func NewCanteenService(cfg *config.Config, clock service.Clock, logger *slog.Logger) (usecase.CanteenUsecase, error) {
	hours, err := entity.ParseOpeningHours(cfg.Canteen.OpensAt, cfg.Canteen.ClosesAt)
	if err != nil {
		return nil, err
	}

	svc := &canteenService{
		hours:  hours,
		clock:  clock,
		logger: logger,
	}
	svc.open.Store(hours.Contains(clock.Now()))

	return svc, nil
}

// IsOpen reports the cached open/closed flag.
func (s *canteenService) IsOpen() bool {
	return s.open.Load()
}

// Status returns the flag plus the configured window for display.
func (s *canteenService) Status() usecase.CanteenStatus {
	return usecase.CanteenStatus{
		Open:     s.open.Load(),
		OpensAt:  minuteOfDayLabel(s.hours.OpenMinute),
		ClosesAt: minuteOfDayLabel(s.hours.CloseMinute),
	}
}

// Refresh re-evaluates the gate against the current time.
func (s *canteenService) Refresh() {
	open := s.hours.Contains(s.clock.Now())
	if s.open.Swap(open) != open {
		s.logger.Info("canteen open state changed", slog.Bool("open", open))
	}
}

func minuteOfDayLabel(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
