package subscription

import (
	"github.com/Conte777/tubedigest/config"
	subhttp "github.com/Conte777/tubedigest/internal/domain/subscription/delivery/http"
	"github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	"github.com/Conte777/tubedigest/internal/domain/subscription/repository/cached"
	"github.com/Conte777/tubedigest/internal/domain/subscription/repository/postgres"
	"github.com/Conte777/tubedigest/internal/domain/subscription/usecase/buissines"
	"github.com/Conte777/tubedigest/internal/infrastructure/cache"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/Conte777/tubedigest/internal/infrastructure/kafka"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/Conte777/tubedigest/internal/infrastructure/youtube"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"subscription",
	fx.Provide(
		NewRepository,
		NewUseCase,
		subhttp.NewHandler,
		subhttp.NewRouter,
	),
	fx.Invoke(registerRoutes),
)

// NewRepository returns the Postgres repository, fronted by Redis when a
// cache is configured.
func NewRepository(db *gorm.DB, redis *cache.Redis, cfg *config.RedisConfig, m *metrics.Metrics, logger zerolog.Logger) deps.SubscriptionRepository {
	repo := postgres.NewRepository(db)
	if redis == nil {
		return repo
	}
	return cached.NewRepository(repo, redis, cfg.TTL, m, logger.With().Str("component", "subscription_cache").Logger())
}

func NewUseCase(
	repo deps.SubscriptionRepository,
	fetcher *youtube.Fetcher,
	producer *kafka.Producer,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.SubscriptionUseCase {
	return buissines.NewUseCase(repo, fetcher, producer, m, logger.With().Str("component", "subscription").Logger())
}

func registerRoutes(srv *server.Server, router *subhttp.Router) {
	router.RegisterRoutes(srv.Router)
}
