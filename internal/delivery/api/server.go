package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"bpaml/config"
	"bpaml/internal/delivery"
	apimiddleware "bpaml/internal/delivery/api/middleware"
	"bpaml/internal/delivery/api/router"
	"bpaml/internal/delivery/api/validator"
	"bpaml/internal/delivery/middleware"
	"bpaml/internal/domain/lifecycle"
	"bpaml/internal/errors"
	"bpaml/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Registry     *prometheus.Registry
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	// Order matters: the request id must exist before the access log runs.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(metrics.Handler(params.Registry)))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	timeouts := cfg.HTTP.Timeouts
	e.Server.Addr = net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port))
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout
	e.Server.Handler = h2c.NewHandler(e, &http2.Server{IdleTimeout: timeouts.IdleTimeout})

	return e
}

// Serve blocks until the server is shut down.
func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("API server listening", slog.String("addr", s.server.Server.Addr))

	err := s.server.Server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")

	return errors.WithStack(s.server.Shutdown(ctx))
}
