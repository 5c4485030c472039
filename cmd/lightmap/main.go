package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"lightmap/config"
	"lightmap/internal/delivery"
	"lightmap/internal/delivery/api"
	apimiddleware "lightmap/internal/delivery/api/middleware"
	"lightmap/internal/delivery/api/router/handler"
	"lightmap/internal/infra/auth"
	"lightmap/internal/infra/lock"
	logs "lightmap/internal/infra/log"
	"lightmap/internal/infra/metrics"
	"lightmap/internal/infra/persistence"
	"lightmap/internal/infra/pubsub"
	"lightmap/internal/infra/tracing"
	"lightmap/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			tracing.Setup,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
		lock.New,
		pubsub.NewEventPublisher,
		newMetrics,
	)
}

type metricsResult struct {
	fx.Out

	Metrics *metrics.Metrics
	Handler http.Handler `name:"metrics"`
}

// newMetrics creates the collectors and the /metrics handler. Both are nil
// when metrics are disabled.
func newMetrics(cfg *config.Config) (metricsResult, error) {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return metricsResult{}, nil
	}

	m, reg, err := metrics.New()
	if err != nil {
		return metricsResult{}, err
	}

	return metricsResult{
		Metrics: m,
		Handler: metrics.Handler(reg),
	}, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewIdentityResolver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMergeEngine,
			impl.NewSubmissionService,
			impl.NewMarkerService,
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
			handler.NewMarkerHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
