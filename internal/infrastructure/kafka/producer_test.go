package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

type testEvent struct {
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
}

func TestNewKafkaProducer_EmptyBrokers(t *testing.T) {
	_, err := NewKafkaProducer(nil, nil, zerolog.Nop())
	if err == nil {
		t.Fatal("Expected error for empty brokers, got nil")
	}
	if err.Error() != "no kafka brokers specified" {
		t.Errorf("Expected 'no kafka brokers specified', got %v", err)
	}
}

func TestProducer_SendToTopic(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e testEvent
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.UserID != "user-1" || e.ChannelID != "UC123" {
			return errors.New("unexpected payload")
		}
		return nil
	})

	m := metrics.NewMetrics(prometheus.NewRegistry())
	p := NewProducerWith(mockProducer, m, zerolog.Nop())

	err := p.SendToTopic(context.Background(), "subscription.created", "user-1", testEvent{UserID: "user-1", ChannelID: "UC123"})
	if err != nil {
		t.Fatalf("SendToTopic returned error: %v", err)
	}

	if got := testutil.ToFloat64(m.EventsPublished.WithLabelValues("subscription.created", "success")); got != 1 {
		t.Errorf("events published = %v, want 1", got)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestProducer_SendToTopic_Failure(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerWith(mockProducer, nil, zerolog.Nop())

	err := p.SendToTopic(context.Background(), "video.requested", "user-1", testEvent{})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Errorf("Expected ErrOutOfBrokers, got %v", err)
	}
	if p.errorCount.Load() != 1 {
		t.Errorf("error count = %d, want 1", p.errorCount.Load())
	}
	_ = p.Close()
}

func TestProducer_Disabled(t *testing.T) {
	p := NewDisabledProducer(zerolog.Nop())

	if err := p.SendToTopic(context.Background(), "preference.updated", "user-1", testEvent{}); err != nil {
		t.Errorf("disabled producer returned error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
