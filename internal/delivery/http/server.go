package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery"
	httpmiddleware "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/middleware"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/router"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/validator"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/middleware"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/lifecycle"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for the HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Portal       entity.PortalContext
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho builds the echo instance with the middleware chain and all routes.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: the request ID must exist before anything logs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger, slog.String("portal", params.Portal.Portal.String())).Process)
	e.Use(slogecho.New(params.Logger.With(slog.String("portal", params.Portal.Portal.String()))))
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting console HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down console HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
