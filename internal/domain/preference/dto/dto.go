package dto

import (
	"time"

	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
)

type OnboardRequest struct {
	Type       string   `json:"type"`
	Value      string   `json:"value"`
	Categories []string `json:"categories"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type PreferenceResponse struct {
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	Categories  []string  `json:"categories"`
	Enabled     bool      `json:"enabled"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewPreferenceResponse(p *entities.NotificationPreference) PreferenceResponse {
	return PreferenceResponse{
		Type:        string(p.ChannelType),
		Destination: p.Destination,
		Categories:  append([]string{}, p.Categories...),
		Enabled:     p.Enabled,
		UpdatedAt:   p.UpdatedAt,
	}
}
