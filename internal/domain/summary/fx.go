package summary

import (
	"context"

	"github.com/Conte777/tubedigest/config"
	subdeps "github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	sumhttp "github.com/Conte777/tubedigest/internal/domain/summary/delivery/http"
	sumkafka "github.com/Conte777/tubedigest/internal/domain/summary/delivery/kafka"
	"github.com/Conte777/tubedigest/internal/domain/summary/deps"
	"github.com/Conte777/tubedigest/internal/domain/summary/repository/postgres"
	"github.com/Conte777/tubedigest/internal/domain/summary/usecase/buissines"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/Conte777/tubedigest/internal/infrastructure/kafka"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"summary",
	fx.Provide(
		NewRepository,
		NewChannelDirectory,
		NewUseCase,
		sumhttp.NewHandler,
		sumhttp.NewRouter,
		NewEventHandler,
	),
	fx.Invoke(
		registerRoutes,
		registerConsumer,
	),
)

func NewRepository(db *gorm.DB) deps.SummaryRepository {
	return postgres.NewRepository(db)
}

func NewChannelDirectory(subscriptions subdeps.SubscriptionUseCase) deps.ChannelDirectory {
	return subscriptions
}

func NewUseCase(
	repo deps.SummaryRepository,
	channels deps.ChannelDirectory,
	producer *kafka.Producer,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.SummaryUseCase {
	return buissines.NewUseCase(repo, channels, producer, m, logger.With().Str("component", "summary").Logger())
}

func NewEventHandler(uc deps.SummaryUseCase, channels deps.ChannelDirectory, logger zerolog.Logger) *sumkafka.Handler {
	return sumkafka.NewHandler(uc, channels, logger.With().Str("component", "summary_consumer").Logger())
}

func registerRoutes(srv *server.Server, router *sumhttp.Router) {
	router.RegisterRoutes(srv.Router)
}

func registerConsumer(lc fx.Lifecycle, cfg *config.KafkaConfig, handler *sumkafka.Handler, logger zerolog.Logger) {
	if !cfg.Enabled {
		logger.Warn().Msg("kafka disabled, summary events will not be consumed")
		return
	}

	consumer := kafka.NewConsumer(cfg, cfg.TopicSummaryGenerated, handler.HandleSummaryGenerated, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			consumer.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return consumer.Stop()
		},
	})
}
