package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/middleware"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/router/handler"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/lifecycle"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/auth"
	logs "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/log"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/marketplace"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/portal"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/pubsub"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/storage"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Auth       usecase.AuthUsecase
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
			portal.New,
		),
		storage.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		marketplace.Module,
		fx.Provide(
			auth.NewJWTInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionStore,
			impl.NewAuthService,
			impl.NewAccessGate,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGateMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccessHandler,
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
		),
	)
}

// startServer hydrates the session before accepting traffic, then serves.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			initCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return params.Auth.Initialize(initCtx)
		},
	})

	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
