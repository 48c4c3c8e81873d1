package entities

import (
	"time"

	"github.com/google/uuid"
)

// Channel represents a YouTube channel shared by all of its subscribers
type Channel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ChannelID    string    `gorm:"column:channel_id;not null;uniqueIndex" json:"channel_id"`
	Name         string    `gorm:"column:channel_name;not null" json:"name"`
	URL          string    `gorm:"column:channel_url;not null" json:"url"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url" json:"thumbnail_url,omitempty"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Channel) TableName() string {
	return "youtube_channels"
}

// Subscription represents a user-channel subscription (many-to-many)
type Subscription struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	ChannelID    uuid.UUID `gorm:"column:channel_id;type:uuid;primaryKey"`
	SubscribedAt time.Time `gorm:"column:subscribed_at;not null"`
}

func (Subscription) TableName() string {
	return "user_channel_subscriptions"
}

// SubscribedChannel is a channel as seen by one subscriber
type SubscribedChannel struct {
	Channel      `gorm:"embedded"`
	SubscribedAt time.Time `gorm:"column:subscribed_at" json:"subscribed_at"`
}

// ChannelDescriptor identifies a channel and carries the display data used
// when the channel is seen for the first time.
type ChannelDescriptor struct {
	ExternalID   string
	Name         string
	URL          string
	ThumbnailURL string
	Description  string
}

// NewChannel builds a Channel row from the descriptor
func (d ChannelDescriptor) NewChannel() *Channel {
	return &Channel{
		ID:           uuid.New(),
		ChannelID:    d.ExternalID,
		Name:         d.Name,
		URL:          d.URL,
		ThumbnailURL: optional(d.ThumbnailURL),
		Description:  optional(d.Description),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
