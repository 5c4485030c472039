package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lightmap/config"
	"lightmap/internal/domain/service"
	"lightmap/internal/errors"
	"lightmap/internal/infra/auth"
	"lightmap/internal/infra/geocoding"
	"lightmap/internal/infra/lock"
	logs "lightmap/internal/infra/log"
	"lightmap/internal/infra/metrics"
	"lightmap/internal/infra/persistence"
	"lightmap/internal/infra/pubsub"
	"lightmap/internal/usecase"
	"lightmap/internal/usecase/impl"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type runImportParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Importer usecase.ImportUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runImport,
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
		// Import runs are summarized by their report; no /metrics endpoint is served.
		func() *metrics.Metrics { return nil },
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityResolver,
			newGeocoder,
		),
	)
}

// newGeocoder returns nil when no geocoder is configured; rows without
// coordinates are then skipped.
func newGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	if cfg.Importer == nil || cfg.Importer.Geocoder.BaseURL == "" {
		return nil
	}

	return geocoding.NewNominatimGeocoder(cfg.Importer.Geocoder, &http.Client{
		Timeout: cfg.Importer.Geocoder.Timeout,
	}, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMergeEngine,
			impl.NewSubmissionService,
			impl.NewImportService,
		),
	)
}

// runImport imports the configured object once the graph has started, then
// stops the application with a non-zero exit code on failure.
func runImport(params runImportParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := importObject(params.Ctx, params.Config, params.Logger, params.Importer); err != nil {
					params.Logger.Error("Import failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func importObject(ctx context.Context, cfg *config.Config, logger *slog.Logger, importer usecase.ImportUsecase) error {
	if cfg.Importer == nil || cfg.Importer.BucketURL == "" || cfg.Importer.Key == "" {
		return errors.New("importer.bucketUrl and importer.key are required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Importer.BucketURL)
	if err != nil {
		return errors.Wrapf(err, "open bucket %s", cfg.Importer.BucketURL)
	}
	defer bucket.Close()

	reader, err := bucket.NewReader(ctx, cfg.Importer.Key, nil)
	if err != nil {
		return errors.Wrapf(err, "open object %s", cfg.Importer.Key)
	}
	defer reader.Close()

	logger.Info("Importing observations",
		slog.String("bucket", cfg.Importer.BucketURL),
		slog.String("key", cfg.Importer.Key),
	)

	report, err := importer.Import(ctx, reader)
	if err != nil {
		return err
	}

	logger.Info("Import finished",
		slog.Int("total", report.Total),
		slog.Int("created", report.Created),
		slog.Int("merged", report.Merged),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", report.Duration.Round(time.Millisecond)),
	)

	return nil
}
