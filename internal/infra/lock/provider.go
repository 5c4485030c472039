package lock

import (
	"context"
	"log/slog"

	"lightmap/config"
	"lightmap/internal/domain/constants"
	"lightmap/internal/domain/lifecycle"
	"lightmap/internal/domain/service"
	"lightmap/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the region locker named by marker.lockProvider.
func New(params Params) (service.RegionLocker, error) {
	switch provider := params.Config.Marker.LockProvider; provider {
	case constants.LockProviderLocal:
		return NewLocalLocker(), nil

	case constants.LockProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis lock provider requires redis.addr")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("Using redis region locks", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisLocker(client, params.Config.Marker.LockTTL, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown lock provider %q", provider)
	}
}
