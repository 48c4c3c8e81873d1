package entities

import (
	"time"

	"github.com/google/uuid"
)

// VideoSummary is one generated summary of a video, owned by a single user
type VideoSummary struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"column:user_id;not null;uniqueIndex:idx_video_summaries_user_video" json:"user_id"`
	ChannelID      uuid.UUID `gorm:"column:channel_id;type:uuid;not null" json:"channel_id"`
	VideoID        string    `gorm:"column:video_id;not null;uniqueIndex:idx_video_summaries_user_video" json:"video_id"`
	VideoTitle     string    `gorm:"column:video_title;not null" json:"video_title"`
	VideoURL       string    `gorm:"column:video_url;not null" json:"video_url"`
	ThumbnailURL   *string   `gorm:"column:thumbnail_url" json:"thumbnail_url,omitempty"`
	PublishedAt    time.Time `gorm:"column:published_at;not null" json:"published_at"`
	SummaryContent string    `gorm:"column:summary_content;not null" json:"summary_content"`
	IsRead         bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VideoSummary) TableName() string {
	return "video_summaries"
}
