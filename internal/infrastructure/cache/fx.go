package cache

import (
	"context"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module("cache",
	fx.Provide(
		NewRedisFx,
		fx.Annotate(NewHealthCheck, fx.ResultTags(`group:"health_checks"`)),
	),
)

// NewRedisFx returns nil when REDIS_URL is unset; consumers treat nil as "no cache".
func NewRedisFx(lc fx.Lifecycle, cfg *config.RedisConfig, log zerolog.Logger) (*Redis, error) {
	if cfg.URL == "" {
		log.Info().Msg("redis cache disabled")
		return nil, nil
	}

	r, err := New(cfg.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := r.Ping(ctx); err != nil {
				log.Warn().Err(err).Msg("redis is not reachable, cache lookups will fall through")
				return nil
			}
			log.Info().Msg("redis cache connected")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing redis client...")
			return r.Close()
		},
	})

	return r, nil
}

func NewHealthCheck(r *Redis) server.HealthCheck {
	return server.HealthCheck{
		Name: "redis",
		Check: func(ctx context.Context) error {
			if r == nil {
				return nil
			}
			return r.Ping(ctx)
		},
	}
}
