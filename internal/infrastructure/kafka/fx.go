package kafka

import (
	"context"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"kafka",
	fx.Provide(NewProducer),
)

func NewProducer(lc fx.Lifecycle, cfg *config.KafkaConfig, m *metrics.Metrics, log zerolog.Logger) (*Producer, error) {
	if !cfg.Enabled {
		log.Warn().Msg("kafka disabled, domain events will not be published")
		return NewDisabledProducer(log), nil
	}

	producer, err := NewKafkaProducer(cfg.Brokers, m, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing kafka producer...")
			return producer.Close()
		},
	})

	return producer, nil
}
