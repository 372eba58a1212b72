package impl

import (
	"context"
	"log/slog"
	"sync"

	"bites/config"
	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	"bites/internal/usecase"

	"github.com/shopspring/decimal"
)

type cartService struct {
	mu      sync.Mutex
	cart    entity.Cart
	catalog *entity.Catalog
	pricing entity.PricingPolicy
	canteen usecase.CanteenUsecase
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewCartService creates the cart and pricing engine over the given catalog.
func NewCartService(
	cfg *config.Config,
	catalog *entity.Catalog,
	canteen usecase.CanteenUsecase,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		catalog: catalog,
		pricing: entity.PricingPolicy{
			DiscountRate: decimal.NewFromFloat(cfg.Canteen.DiscountRate),
			DeliveryFee:  decimal.NewFromFloat(cfg.Canteen.DeliveryFee),
		},
		canteen: canteen,
		session: session,
		logger:  logger,
	}
}

// AddItem increments the quantity of a catalog item by one.
func (s *cartService) AddItem(ctx context.Context, itemID int) error {
	if !s.canteen.IsOpen() {
		return domainerrors.ErrCanteenClosed
	}

	item, ok := s.catalog.Find(itemID)
	if !ok {
		return domainerrors.ErrUnknownMenuItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)

	return nil
}

// ChangeQuantity adjusts a line's quantity by delta, clamping at zero.
func (s *cartService) ChangeQuantity(ctx context.Context, itemID, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.ChangeQuantity(itemID, delta)
}

// RemoveItem deletes the line unconditionally.
func (s *cartService) RemoveItem(ctx context.Context, itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// View returns the cart lines and the totals for the given mode, with the
// membership discount applied whenever a profile is present.
func (s *cartService) View(ctx context.Context, mode entity.FulfillmentMode) *usecase.CartView {
	membership := s.session.Current(ctx) != nil

	s.mu.Lock()
	defer s.mu.Unlock()

	return &usecase.CartView{
		Lines:  s.cart.Lines(),
		Totals: s.pricing.Compute(&s.cart, membership, mode),
	}
}

// Snapshot returns a copy of the current cart for order placement.
func (s *cartService) Snapshot(ctx context.Context) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}
