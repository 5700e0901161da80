package main

import (
	"context"
	"log/slog"
	"os"

	"sommelier/config"
	"sommelier/internal/delivery"
	"sommelier/internal/delivery/api"
	"sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/router/handler"
	"sommelier/internal/delivery/worker"
	"sommelier/internal/infra/auth"
	"sommelier/internal/infra/identity"
	logs "sommelier/internal/infra/log"
	"sommelier/internal/infra/metrics"
	"sommelier/internal/infra/persistence"
	"sommelier/internal/infra/pubsub"
	"sommelier/internal/infra/qrcode"
	"sommelier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.New,
			metrics.NewRegistry,
			metrics.NewSyncMetrics,
			metrics.NewHTTPMetrics,
		),
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			identity.NewGenerator,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewDrinkService,
			impl.NewCounterSync,
			impl.NewReviewService,
			impl.NewWishService,
			impl.NewReconcileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAuthHandler,
			handler.NewDrinkHandler,
			handler.NewReviewHandler,
			handler.NewWishHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			// The in-process sweep keeps the memory backend converging without a separate worker
			fx.Annotate(
				worker.NewSweeper,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
