package dto

import (
	"time"

	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	"github.com/google/uuid"
)

// ReadResult reports the outcome of a read-state change. Found is false
// when the summary does not exist or belongs to someone else; Changed is
// false when it already had the requested state.
type ReadResult struct {
	Found   bool
	Changed bool
}

// IngestSummary is a generated summary to store for one user
type IngestSummary struct {
	UserID         string
	ChannelID      uuid.UUID
	VideoID        string
	VideoTitle     string
	VideoURL       string
	ThumbnailURL   string
	PublishedAt    time.Time
	SummaryContent string
}

type RequestVideoRequest struct {
	URL string `json:"url"`
}

type RequestVideoResponse struct {
	VideoID string `json:"videoId"`
}

type SummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	ChannelID      uuid.UUID `json:"channelId"`
	VideoID        string    `json:"videoId"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	ThumbnailURL   *string   `json:"thumbnailUrl,omitempty"`
	PublishedAt    time.Time `json:"publishedAt"`
	SummaryContent string    `json:"summaryContent"`
	IsRead         bool      `json:"isRead"`
}

func NewSummaryResponse(s *entities.VideoSummary) SummaryResponse {
	return SummaryResponse{
		ID:             s.ID,
		ChannelID:      s.ChannelID,
		VideoID:        s.VideoID,
		Title:          s.VideoTitle,
		URL:            s.VideoURL,
		ThumbnailURL:   s.ThumbnailURL,
		PublishedAt:    s.PublishedAt,
		SummaryContent: s.SummaryContent,
		IsRead:         s.IsRead,
	}
}
