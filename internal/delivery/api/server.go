package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"fooddash/config"
	"fooddash/internal/delivery"
	apimiddleware "fooddash/internal/delivery/api/middleware"
	"fooddash/internal/delivery/api/router"
	"fooddash/internal/delivery/api/validator"
	"fooddash/internal/delivery/middleware"
	"fooddash/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const serverName = "fooddash-api"

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	RouterParams   router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

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

// NewEcho builds the configured echo instance with every route registered.
func NewEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so a panicking handler still gets an error envelope
	echoServer.Use(echomiddleware.Recover())

	// Server span around everything below, so request logs carry its trace id
	echoServer.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(serverName,
		otelhttp.WithTracerProvider(params.TracerProvider),
	)))

	// Request ID must run before the access log
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
