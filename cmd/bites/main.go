package main

import (
	"context"
	"log/slog"
	"os"

	"bites/config"
	"bites/internal/delivery"
	"bites/internal/delivery/http"
	"bites/internal/delivery/http/middleware"
	"bites/internal/delivery/http/router/handler"
	"bites/internal/delivery/poller"
	"bites/internal/domain/entity"
	"bites/internal/infra/clock"
	logs "bites/internal/infra/log"
	"bites/internal/infra/persistence/keyval"
	"bites/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.New,
		keyval.New,
		newCatalog,
	)
}

// newCatalog provides the static menu.
func newCatalog() *entity.Catalog {
	return entity.NewCatalog(entity.DefaultMenu())
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			keyval.NewOrderRepository,
			keyval.NewInquiryRepository,
			keyval.NewProfileRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCanteenService,
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewInquiryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMenuHandler,
			handler.NewCanteenHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
			handler.NewInquiryHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				poller.NewPoller,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
