package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/worker"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/worker/handler"
	logs "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/log"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/storage"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase/impl"

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
		injectUsecase(),
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
			metrics.New,
		),
		storage.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
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
