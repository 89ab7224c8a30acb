package main

import (
	"context"
	"log/slog"
	"os"

	"bpaml/config"
	"bpaml/internal/delivery"
	"bpaml/internal/delivery/api"
	apimiddleware "bpaml/internal/delivery/api/middleware"
	"bpaml/internal/delivery/api/router/handler"
	"bpaml/internal/domain/service"
	"bpaml/internal/infra/auth"
	logs "bpaml/internal/infra/log"
	"bpaml/internal/infra/metrics"
	"bpaml/internal/infra/oauthstate"
	"bpaml/internal/infra/persistence/postgres"
	"bpaml/internal/infra/pubsub"
	"bpaml/internal/infra/strava"
	"bpaml/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
			fx.Annotate(
				metrics.NewRegistry,
				fx.As(fx.Self()),
				fx.As(new(prometheus.Registerer)),
			),
			fx.Annotate(
				metrics.NewRecorder,
				fx.As(new(service.SyncMetrics)),
				fx.As(new(strava.RequestObserver)),
			),
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAthleteRepository,
			postgres.NewCredentialRepository,
			postgres.NewActivityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			strava.NewHTTPClient,
			strava.NewTokenExchanger,
			strava.NewActivityClient,
			oauthstate.NewMemoryStore,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenRefresher,
			impl.NewActivityFetcher,
			impl.NewActivityService,
			impl.NewAthleteService,
			impl.NewLinkService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewOAuthHandler,
			handler.NewAthleteHandler,
			handler.NewActivityHandler,
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
