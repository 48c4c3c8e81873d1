package dto

import (
	"time"

	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	"github.com/google/uuid"
)

// SubscribeResult reports the channel row and whether the user already followed it
type SubscribeResult struct {
	Channel           *entities.Channel
	AlreadySubscribed bool
}

// SubscribeRequest accepts either a channel URL or a full descriptor
type SubscribeRequest struct {
	URL          string `json:"url"`
	ChannelID    string `json:"channelId"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description"`
}

func (r SubscribeRequest) Descriptor() entities.ChannelDescriptor {
	return entities.ChannelDescriptor{
		ExternalID:   r.ChannelID,
		Name:         r.Name,
		URL:          r.URL,
		ThumbnailURL: r.ThumbnailURL,
		Description:  r.Description,
	}
}

type ChannelResponse struct {
	ID           uuid.UUID  `json:"id"`
	ChannelID    string     `json:"channelId"`
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	ThumbnailURL *string    `json:"thumbnailUrl,omitempty"`
	Description  *string    `json:"description,omitempty"`
	SubscribedAt *time.Time `json:"subscribedAt,omitempty"`
}

type SubscribeResponse struct {
	Channel           ChannelResponse `json:"channel"`
	AlreadySubscribed bool            `json:"alreadySubscribed"`
}

func NewChannelResponse(c *entities.Channel) ChannelResponse {
	return ChannelResponse{
		ID:           c.ID,
		ChannelID:    c.ChannelID,
		Name:         c.Name,
		URL:          c.URL,
		ThumbnailURL: c.ThumbnailURL,
		Description:  c.Description,
	}
}

func NewSubscribedChannelResponse(c entities.SubscribedChannel) ChannelResponse {
	resp := NewChannelResponse(&c.Channel)
	at := c.SubscribedAt
	resp.SubscribedAt = &at
	return resp
}
