package events

import (
	"context"
	"time"
)

// Kafka topics
const (
	TopicPreferenceUpdated     = "preference.updated"
	TopicSubscriptionCreated   = "subscription.created"
	TopicSubscriptionCancelled = "subscription.cancelled"
	TopicVideoRequested        = "video.requested"
	TopicSummaryGenerated      = "summary.generated"
)

// Publisher sends an event to a topic, keyed for partitioning
type Publisher interface {
	SendToTopic(ctx context.Context, topic string, key string, event any) error
}

// PreferenceUpdated is emitted after a notification preference is committed
type PreferenceUpdated struct {
	UserID      string    `json:"user_id"`
	ChannelType string    `json:"channel_type"`
	Destination string    `json:"destination"`
	Categories  []string  `json:"categories"`
	Enabled     bool      `json:"enabled"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubscriptionChanged is emitted on subscribe and unsubscribe
type SubscriptionChanged struct {
	UserID      string    `json:"user_id"`
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	ChannelURL  string    `json:"channel_url"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// VideoRequested asks the external summarizer to process a video
type VideoRequested struct {
	UserID      string    `json:"user_id"`
	ChannelID   string    `json:"channel_id"`
	VideoID     string    `json:"video_id"`
	VideoURL    string    `json:"video_url"`
	RequestedAt time.Time `json:"requested_at"`
}

// SummaryGenerated carries a finished summary back from the summarizer
type SummaryGenerated struct {
	UserID         string    `json:"user_id"`
	ChannelID      string    `json:"channel_id"`
	VideoID        string    `json:"video_id"`
	VideoTitle     string    `json:"video_title"`
	VideoURL       string    `json:"video_url"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	PublishedAt    time.Time `json:"published_at"`
	SummaryContent string    `json:"summary_content"`
}
