// Package poller drives the canteen open/closed gate on a fixed interval.
package poller

import (
	"context"
	"log/slog"
	"time"

	"bites/config"
	"bites/internal/delivery"
	"bites/internal/usecase"

	"go.uber.org/fx"
)

type statusPoller struct {
	canteenUC usecase.CanteenUsecase
	interval  time.Duration
	logger    *slog.Logger
	stop      chan struct{}
}

// ServerParams holds dependencies for the status poller
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	CanteenUC usecase.CanteenUsecase
}

// NewPoller creates the background worker that re-evaluates the
// operating-hours gate once per interval.
func NewPoller(params ServerParams) (delivery.Delivery, error) {
	p := &statusPoller{
		canteenUC: params.CanteenUC,
		interval:  params.Cfg.Canteen.StatusPollInterval,
		logger:    params.Logger,
		stop:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.shutdown,
	})

	return p, nil
}

// Serve ticks the gate until shutdown.
func (p *statusPoller) Serve(ctx context.Context) error {
	p.logger.Info("Starting canteen status poller", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.canteenUC.Refresh()
		case <-p.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (p *statusPoller) shutdown(ctx context.Context) error {
	p.logger.Info("Shutting down canteen status poller")
	close(p.stop)

	return nil
}
