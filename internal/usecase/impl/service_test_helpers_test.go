package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bites/config"
	"bites/internal/domain/entity"
	mockRepo "bites/internal/mocks/repository"
	"bites/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock is a settable clock for tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

var (
	// Noon, well inside the 08:30-19:30 window.
	openNoon = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.Local)
	// Past closing time on the same day.
	closedNight = time.Date(2025, time.March, 3, 21, 0, 0, 0, time.Local)
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Canteen = &config.CanteenConfig{
		OpensAt:              "08:30",
		ClosesAt:             "19:30",
		StatusPollInterval:   time.Minute,
		DiscountRate:         0.10,
		DeliveryFee:          20,
		AutoAdvanceDelay:     25 * time.Millisecond,
		BasePrepMinutes:      5,
		PerLineMinutes:       2,
		DeliveryExtraMinutes: 10,
	}

	return cfg
}

type orderStackFixtures struct {
	orders      usecase.OrderUsecase
	cart        usecase.CartUsecase
	session     usecase.SessionUsecase
	canteen     usecase.CanteenUsecase
	clock       *fakeClock
	cfg         *config.Config
	orderRepo   *mockRepo.MockOrderRepository
	profileRepo *mockRepo.MockProfileRepository
}

// createTestOrderStack wires the full usecase stack over mocked storage,
// with the clock parked inside the opening hours.
func createTestOrderStack(t *testing.T) orderStackFixtures {
	ctx := context.Background()
	cfg := newTestConfig()
	clock := newFakeClock(openNoon)
	logger := newDiscardLogger()

	canteen, err := NewCanteenService(cfg, clock, logger)
	require.NoError(t, err)

	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().LoadProfile(mock.Anything).Return(nil, nil).Once()
	session := NewSessionService(ctx, profileRepo, logger)

	cart := NewCartService(cfg, entity.NewCatalog(entity.DefaultMenu()), canteen, session, logger)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().LoadOrders(mock.Anything).Return(nil, nil).Once()
	orderRepo.EXPECT().SaveOrders(mock.Anything, mock.Anything).Return(nil).Maybe()
	orders := NewOrderService(ctx, cfg, orderRepo, cart, session, canteen, clock, logger)

	return orderStackFixtures{
		orders:      orders,
		cart:        cart,
		session:     session,
		canteen:     canteen,
		clock:       clock,
		cfg:         cfg,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
	}
}
