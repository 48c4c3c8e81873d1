package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// Producer publishes JSON domain events. A Producer without a sarama
// producer behind it drops events after logging them.
type Producer struct {
	producer     sarama.SyncProducer
	logger       zerolog.Logger
	metrics      *metrics.Metrics
	successCount atomic.Uint64
	errorCount   atomic.Uint64
}

func NewKafkaProducer(brokers []string, m *metrics.Metrics, logger zerolog.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers specified")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Timeout = 10 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		logger.Error().Err(err).Strs("brokers", brokers).Msg("failed to create Kafka SyncProducer")
		return nil, err
	}

	logger.Info().Strs("brokers", brokers).Msg("Kafka SyncProducer successfully initialized")

	return NewProducerWith(producer, m, logger), nil
}

// NewProducerWith wraps an existing sarama producer
func NewProducerWith(producer sarama.SyncProducer, m *metrics.Metrics, logger zerolog.Logger) *Producer {
	return &Producer{
		producer: producer,
		logger:   logger,
		metrics:  m,
	}
}

// NewDisabledProducer returns a Producer that only logs events
func NewDisabledProducer(logger zerolog.Logger) *Producer {
	return &Producer{logger: logger}
}

func (p *Producer) Close() error {
	if p.producer == nil {
		p.logger.Info().Msg("Kafka producer already closed or not initialized")
		return nil
	}

	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("failed to close Kafka producer")
		return err
	}

	p.logger.Info().Msg("Kafka producer successfully closed")
	return nil
}

// SendToTopic sends any event to a specific topic
func (p *Producer) SendToTopic(ctx context.Context, topic string, key string, event any) error {
	if p.producer == nil {
		p.logger.Debug().
			Str("topic", topic).
			Str("key", key).
			Msg("kafka disabled, event dropped")
		return nil
	}

	bytes, err := json.Marshal(event)
	if err != nil {
		p.record(topic, false)
		p.logger.Error().
			Err(err).
			Str("topic", topic).
			Uint64("error_count", p.errorCount.Load()).
			Msg("failed to marshal event")
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(msg)
	latency := time.Since(start)

	if err != nil {
		p.record(topic, false)
		p.logger.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Dur("latency", latency).
			Uint64("error_count", p.errorCount.Load()).
			Msg("failed to send event to kafka")
		return err
	}

	p.record(topic, true)
	p.logger.Info().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Dur("latency", latency).
		Uint64("success_count", p.successCount.Load()).
		Msg("event sent to kafka")

	return nil
}

func (p *Producer) record(topic string, ok bool) {
	status := "success"
	if ok {
		p.successCount.Add(1)
	} else {
		p.errorCount.Add(1)
		status = "error"
	}
	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(topic, status).Inc()
	}
}
