package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/Conte777/tubedigest/config"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const (
	minBytes = 1
	maxBytes = 10e6 // 10MB

	defaultRetryBackoff = 500 * time.Millisecond
	defaultMaxBackoff   = 30 * time.Second
)

// MessageHandler processes one message value. A non-nil error makes the
// consumer retry the same message; nothing after it is fetched until it
// succeeds or the consumer stops.
type MessageHandler func(ctx context.Context, value []byte) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a single topic in a consumer group and hands every message to a MessageHandler
type Consumer struct {
	reader messageReader
	handle MessageHandler
	topic  string
	logger zerolog.Logger

	retryBackoff time.Duration
	maxBackoff   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewConsumer(cfg *config.KafkaConfig, topic string, handle MessageHandler, logger zerolog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       topic,
		GroupID:     cfg.GroupID,
		MinBytes:    minBytes,
		MaxBytes:    maxBytes,
		MaxWait:     3 * time.Second,
		StartOffset: kafka.FirstOffset,
	})

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", topic).
		Str("group_id", cfg.GroupID).
		Msg("Kafka consumer initialized")

	return newConsumer(reader, topic, handle, logger)
}

func newConsumer(reader messageReader, topic string, handle MessageHandler, logger zerolog.Logger) *Consumer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Consumer{
		reader: reader,
		handle: handle,
		topic:  topic,
		logger: logger,

		retryBackoff: defaultRetryBackoff,
		maxBackoff:   defaultMaxBackoff,

		ctx:    ctx,
		cancel: cancel,
	}
}

func (c *Consumer) Start() {
	c.wg.Add(1)
	go c.consume()
	c.logger.Info().Str("topic", c.topic).Msg("Kafka consumer started")
}

func (c *Consumer) consume() {
	defer c.wg.Done()

	for {
		msg, err := c.reader.FetchMessage(c.ctx)
		if err != nil {
			if c.ctx.Err() != nil {
				c.logger.Info().Msg("Consumer context canceled, stopping")
				return
			}
			c.logger.Error().Err(err).Str("topic", c.topic).Msg("Failed to fetch message")
			continue
		}

		c.logger.Debug().
			Str("topic", msg.Topic).
			Int("partition", msg.Partition).
			Int64("offset", msg.Offset).
			Msg("Received message from Kafka")

		if !c.handleWithRetry(msg) {
			c.logger.Info().
				Int64("offset", msg.Offset).
				Msg("Consumer stopped before message was handled, leaving it uncommitted")
			return
		}

		if err := c.reader.CommitMessages(c.ctx, msg); err != nil {
			c.logger.Error().Err(err).
				Int64("offset", msg.Offset).
				Msg("Failed to commit message")
		}
	}
}

// handleWithRetry runs the handler until it succeeds. It reports false when
// the consumer was stopped first.
func (c *Consumer) handleWithRetry(msg kafka.Message) bool {
	backoff := c.retryBackoff
	for attempt := 1; ; attempt++ {
		err := c.handle(c.ctx, msg.Value)
		if err == nil {
			return true
		}

		c.logger.Error().Err(err).
			Str("topic", msg.Topic).
			Int64("offset", msg.Offset).
			Int("attempt", attempt).
			Dur("retry_in", backoff).
			Msg("Failed to handle message")

		timer := time.NewTimer(backoff)
		select {
		case <-c.ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		backoff *= 2
		if backoff > c.maxBackoff {
			backoff = c.maxBackoff
		}
	}
}

func (c *Consumer) Stop() error {
	c.cancel()
	c.wg.Wait()

	if err := c.reader.Close(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to close Kafka consumer")
		return err
	}

	c.logger.Info().Str("topic", c.topic).Msg("Kafka consumer stopped")
	return nil
}
