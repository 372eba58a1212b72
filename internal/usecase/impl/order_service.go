package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"bites/config"
	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	"bites/internal/domain/repository"
	"bites/internal/domain/service"
	"bites/internal/usecase"
)

type orderService struct {
	mu       sync.Mutex
	orders   []*entity.Order
	timers   map[string]*time.Timer
	lastIDMs int64

	orderRepo repository.OrderRepository
	cart      usecase.CartUsecase
	session   usecase.SessionUsecase
	canteen   usecase.CanteenUsecase
	clock     service.Clock
	cfg       *config.CanteenConfig
	logger    *slog.Logger
}

// NewOrderService creates the order lifecycle manager, restoring the
// persisted history. An unreadable history degrades to empty.
func NewOrderService(
	ctx context.Context,
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	canteen usecase.CanteenUsecase,
	clock service.Clock,
	logger *slog.Logger,
) usecase.OrderUsecase {
	orders, err := orderRepo.LoadOrders(ctx)
	if err != nil {
		logger.Warn("stored order history unavailable, starting empty", slog.Any("error", err))
		orders = nil
	}

	return &orderService{
		orders:    orders,
		timers:    make(map[string]*time.Timer),
		orderRepo: orderRepo,
		cart:      cart,
		session:   session,
		canteen:   canteen,
		clock:     clock,
		cfg:       cfg.Canteen,
		logger:    logger,
	}
}

// PlaceOrder snapshots the cart into a new order. Any rejection leaves the
// cart and the history untouched.
func (s *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.Mode != entity.ModePickup && input.Mode != entity.ModeDelivery {
		return nil, domainerrors.ErrInvalidFulfillmentMode
	}

	if !s.canteen.IsOpen() {
		return nil, domainerrors.ErrCanteenClosed
	}

	cart := s.cart.Snapshot(ctx)
	if cart.Empty() {
		return nil, domainerrors.ErrEmptyCart
	}

	location := entity.CounterLocation
	if input.Mode == entity.ModeDelivery {
		location = strings.TrimSpace(input.Location)
		if location == "" {
			return nil, domainerrors.ErrDeliveryLocationRequired
		}
	}

	profile := s.session.Current(ctx)
	totals := s.cart.View(ctx, input.Mode).Totals
	now := s.clock.Now()

	order := &entity.Order{
		Token:            newToken(),
		CustomerName:     entity.GuestName,
		Items:            cart.Description(),
		Total:            totals.GrandTotal,
		Mode:             input.Mode,
		Location:         location,
		Status:           entity.StatusReceived,
		EstimatedMinutes: s.estimateMinutes(cart, input.Mode),
		CreatedAt:        now,
	}
	if profile != nil {
		order.CustomerName = profile.Name
		order.CustomerUID = profile.UID
	}

	s.mu.Lock()
	order.ID = s.nextIDLocked(now)
	s.orders = append([]*entity.Order{order}, s.orders...)
	s.persistLocked(ctx)
	s.timers[order.ID] = time.AfterFunc(s.cfg.AutoAdvanceDelay, func() {
		s.autoAdvance(order.ID)
	})
	s.mu.Unlock()

	s.cart.Clear(ctx)

	s.logger.Info("order placed",
		slog.String("orderID", order.ID),
		slog.String("token", order.Token),
		slog.String("mode", string(order.Mode)),
		slog.String("total", order.Total.String()),
	)

	out := *order

	return &out, nil
}

// ListOrders returns the order history, most recent first.
func (s *orderService) ListOrders(ctx context.Context) []*entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Order, len(s.orders))
	for i, order := range s.orders {
		copied := *order
		out[i] = &copied
	}

	return out
}

// GetOrder returns one order by its identifier.
func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findLocked(id)
	if order == nil {
		return nil, domainerrors.ErrOrderNotFound
	}
	out := *order

	return &out, nil
}

// UpdateStatus applies a manual, forward-only status transition.
func (s *orderService) UpdateStatus(ctx context.Context, id, rawStatus string) (*entity.Order, error) {
	status, ok := entity.ParseStatus(rawStatus)
	if !ok {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("unknown status %q", rawStatus))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findLocked(id)
	if order == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	switch {
	case status.Rank() < order.Status.Rank():
		return nil, domainerrors.ErrStatusRegression
	case status.Rank() > order.Status.Rank():
		order.Status = status
		s.cancelTimerLocked(id)
		s.persistLocked(ctx)
		s.logger.Info("order status updated",
			slog.String("orderID", id),
			slog.String("status", string(status)),
		)
	}

	out := *order

	return &out, nil
}

// autoAdvance is the one-shot timer callback that moves a freshly placed
// order from received to preparing. It is a compare-and-set: an order the
// manager already moved further, or one that no longer exists, is left
// alone.
func (s *orderService) autoAdvance(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, id)

	order := s.findLocked(id)
	if order == nil || order.Status != entity.StatusReceived {
		return
	}

	order.Status = entity.StatusPreparing
	s.persistLocked(context.Background())
	s.logger.Info("order auto-advanced", slog.String("orderID", id))
}

func (s *orderService) estimateMinutes(cart *entity.Cart, mode entity.FulfillmentMode) int {
	minutes := s.cfg.BasePrepMinutes + s.cfg.PerLineMinutes*cart.DistinctLines()
	if mode == entity.ModeDelivery {
		minutes += s.cfg.DeliveryExtraMinutes
	}

	return minutes
}

// nextIDLocked derives a unique, monotonic identifier from the creation
// time. Equal clock readings bump by one millisecond so the ID stays a
// usable primary key.
func (s *orderService) nextIDLocked(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= s.lastIDMs {
		ms = s.lastIDMs + 1
	}
	s.lastIDMs = ms

	return strconv.FormatInt(ms, 10)
}

func (s *orderService) findLocked(id string) *entity.Order {
	for _, order := range s.orders {
		if order.ID == id {
			return order
		}
	}

	return nil
}

func (s *orderService) cancelTimerLocked(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}

// persistLocked mirrors the history to storage. Writes are fire-and-forget;
// a failure is logged and the in-memory state stays authoritative.
func (s *orderService) persistLocked(ctx context.Context) {
	if err := s.orderRepo.SaveOrders(ctx, s.orders); err != nil {
		s.logger.Error("failed to persist order history", slog.Any("error", err))
	}
}

// newToken generates the cosmetic display code. Tokens are random three
// digit numbers and may repeat; the order ID is the primary key.
func newToken() string {
	return "CB-" + strconv.Itoa(100+rand.IntN(900))
}
